package hooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Kind describes the JSON shape a hook was defined with.
type Kind int

const (
	// KindScript is a single command string.
	KindScript Kind = iota
	// KindSequence is an ordered list of commands.
	KindSequence
	// KindOther is any other JSON value. It is carried as raw JSON.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindSequence:
		return "sequence"
	default:
		return "other"
	}
}

// Contents is the raw definition of a hook as written in the manifest.
// The zero value is an empty script.
type Contents struct {
	kind     Kind
	script   string
	commands []string
	raw      json.RawMessage
}

// Script returns contents holding a single command string.
func Script(script string) Contents {
	return Contents{kind: KindScript, script: script}
}

// Sequence returns contents holding an ordered list of commands.
func Sequence(commands ...string) Contents {
	if commands == nil {
		commands = []string{}
	}
	return Contents{kind: KindSequence, commands: commands}
}

// Kind reports the shape of the contents.
func (c Contents) Kind() Kind {
	return c.kind
}

// IsSequence reports whether the contents are a list of commands.
func (c Contents) IsSequence() bool {
	return c.kind == KindSequence
}

// Script returns the command string of script contents.
func (c Contents) Script() string {
	return c.script
}

// Commands returns a copy of the commands of sequence contents.
func (c Contents) Commands() []string {
	return slices.Clone(c.commands)
}

// Raw returns the JSON text of contents that are neither a string nor a
// list of scalars.
func (c Contents) Raw() json.RawMessage {
	return c.raw
}

// MarshalJSON writes the contents back in their original shape.
func (c Contents) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case KindScript:
		return json.Marshal(c.script)
	case KindSequence:
		if c.commands == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.commands)
	default:
		if len(c.raw) == 0 {
			return []byte("null"), nil
		}
		return c.raw, nil
	}
}

// UnmarshalJSON reads a string as a script and a list of scalars as a
// sequence. Numbers and booleans in a sequence keep their JSON text and
// null becomes an empty command. Anything else is kept as raw JSON.
func (c *Contents) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty hook contents")
	}

	switch trimmed[0] {
	case '"':
		var script string
		if err := json.Unmarshal(trimmed, &script); err != nil {
			return err
		}
		*c = Script(script)
		return nil
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return err
		}
		commands := make([]string, 0, len(elements))
		for _, element := range elements {
			command, ok, err := scalarCommand(element)
			if err != nil {
				return err
			}
			if !ok {
				*c = other(trimmed)
				return nil
			}
			commands = append(commands, command)
		}
		*c = Sequence(commands...)
		return nil
	default:
		if !json.Valid(trimmed) {
			return fmt.Errorf("invalid hook contents: %s", trimmed)
		}
		*c = other(trimmed)
		return nil
	}
}

func other(data []byte) Contents {
	return Contents{kind: KindOther, raw: json.RawMessage(bytes.Clone(data))}
}

// scalarCommand converts one sequence element to a command. It reports
// false for nested arrays and objects.
func scalarCommand(element json.RawMessage) (string, bool, error) {
	element = bytes.TrimSpace(element)
	if len(element) == 0 {
		return "", false, fmt.Errorf("empty sequence element")
	}

	switch element[0] {
	case '"':
		var command string
		if err := json.Unmarshal(element, &command); err != nil {
			return "", false, err
		}
		return command, true, nil
	case '[', '{':
		return "", false, nil
	case 'n':
		return "", true, nil
	default:
		return string(element), true, nil
	}
}
