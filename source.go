package endpoints

import (
	"bytes"
	"sync"

	gojson "github.com/goccy/go-json"
)

// JSONDriver converts between JSON text and the representation tree via a
// pluggable SPI. The default implementation is backed by goccy/go-json and
// may be swapped with SetJSONDriver. Drivers must surface numbers as
// json.Number so Decimal and Long never lose precision.
type JSONDriver interface {
	Unmarshal(data []byte) (any, error)
	Marshal(v any) ([]byte, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// goJSONDriver wraps the goccy/go-json implementation.
type goJSONDriver struct{}

func (goJSONDriver) Unmarshal(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (goJSONDriver) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (goJSONDriver) Name() string { return "go-json" }
