package endpoints

// Package endpoints provides:
//
// - A compositional algebra for describing records and tagged unions
//   (EmptyRecord/Field/OptField/Zip/Invmap/TaggedRecord/ChoiceTagged)
// - One bidirectional JSON interpreter over a composed description
//   (Decode/Encode plus a JSON Schema style descriptor via JSONSchema)
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the descriptor document under jsonschema/, derived codecs under
//   codec/, and the OpenAPI renderer under openapi/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := endpoints.MustZip(
//		endpoints.Field("name", endpoints.String()),
//		endpoints.Field("age", endpoints.Int()),
//	)
//	v, err := endpoints.DecodeJSONBytes(ctx, user, data)
//	out, err := endpoints.EncodeJSONBytes(ctx, user, v)
//	doc, err := user.JSONSchema()
