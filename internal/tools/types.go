// Package tools defines the Tool type and the operations this server exposes
// to its calling agent runtime.
package tools

import "context"

// Tool represents a callable operation an agent or remote runtime can invoke
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Execute     func(ctx context.Context, input map[string]interface{}) (string, error)
}
