package render

import "fmt"

// Counter mints element ids unique across every render that shares it.
// The zero value is ready to use.
type Counter struct {
	n int
}

// Next returns a fresh id of the form "id-N".
func (c *Counter) Next() string {
	c.n++
	return fmt.Sprintf("id-%d", c.n)
}

// Issued reports how many ids have been handed out.
func (c *Counter) Issued() int {
	return c.n
}
