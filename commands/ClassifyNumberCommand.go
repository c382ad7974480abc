// Package commands contains the commands for the application to be used for request inputs.
package commands

// ClassifyNumberCommand represents a request to classify the number given in the
// "number" query parameter. Number holds the raw, unparsed text.
type ClassifyNumberCommand struct {
	Number string `validate:"fieldValidator,integerValidator"`
}
