package dictionary

// Config names the collections the facade operates on.
type Config struct {
	// DefinitionsTable holds the dictionary entries.
	// Default: "definitions"
	DefinitionsTable string

	// CounterTable holds the single mirrored count document.
	// Default: "definition_counter"
	CounterTable string

	// DefinitionOfTheDayTable is the singleton slot collection.
	// Default: "definition_of_the_day"
	DefinitionOfTheDayTable string
}

// DefaultConfig returns the default collection names.
func DefaultConfig() Config {
	return Config{
		DefinitionsTable:        "definitions",
		CounterTable:            "definition_counter",
		DefinitionOfTheDayTable: "definition_of_the_day",
	}
}

// validate fills in defaults for unset collection names.
func (c *Config) validate() {
	if c.DefinitionsTable == "" {
		c.DefinitionsTable = "definitions"
	}
	if c.CounterTable == "" {
		c.CounterTable = "definition_counter"
	}
	if c.DefinitionOfTheDayTable == "" {
		c.DefinitionOfTheDayTable = "definition_of_the_day"
	}
}
