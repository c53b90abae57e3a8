package core

import "strconv"

// Parameter describes a single value exposed for display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values shown on the HUD.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by anything that can describe itself on the HUD.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam formats an integer parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(v)}
}

// FloatParam formats a float parameter with the given precision.
func FloatParam(key, label string, v float64, prec int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatFloat(v, 'f', prec, 64)}
}

// TextParam wraps a preformatted value.
func TextParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Value: v}
}
