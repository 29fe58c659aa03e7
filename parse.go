package endpoints

import "context"

// DecodeJSONBytes is the primary wire entry point. It unmarshals data through
// the configured JSON driver and delegates to the Schema's decoder. The last
// DecodeOpt wins when several are given.
func DecodeJSONBytes[A any](ctx context.Context, s Schema[A], data []byte, opts ...DecodeOpt) (A, error) {
	var zero A
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return zero, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	if opt.Strictness.OnDuplicateKey == Error {
		iss, err := DetectJSONDuplicateKeys(data, opt.Strictness, 0)
		if err != nil {
			return zero, singleIssue(CodeParseError, err.Error())
		}
		if len(iss) > 0 {
			return zero, iss
		}
	}
	v, err := getJSONDriver().Unmarshal(data)
	if err != nil {
		return zero, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return s.Decode(ctx, v)
}

// EncodeJSONBytes encodes a through the Schema and marshals the resulting
// representation with the configured JSON driver.
func EncodeJSONBytes[A any](ctx context.Context, s Schema[A], a A) ([]byte, error) {
	if s == nil {
		return nil, singleIssue(CodeParseError, "nil schema")
	}
	v, err := s.Encode(ctx, a)
	if err != nil {
		return nil, err
	}
	out, merr := getJSONDriver().Marshal(v)
	if merr != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: merr.Error(), Cause: merr}}
	}
	return out, nil
}
