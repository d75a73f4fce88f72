package container

import (
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// JSONToSchema parses and validates schema text.
func JSONToSchema(schemaJSON string) (*goavro.Codec, error) {
	c, err := goavro.NewCodec(schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("unable to parse schema: %w", err)
	}
	return c, nil
}

// SchemaToJSON returns the schema text of c.
func SchemaToJSON(c *goavro.Codec) string {
	return c.Schema()
}
