package core

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// SamplePeople is the built-in demo network used when no people file is
// given. Its connection lists deliberately mention each other from both
// sides; after dedup that's exactly five unique peer edges.
func SamplePeople() []Person {
	return []Person{
		{ID: "1", Name: "Sara Kim", Role: "Product Designer", Connections: []string{"2", "5"}},
		{ID: "2", Name: "Michael Chen", Role: "Engineer", Connections: []string{"1", "3"}},
		{ID: "3", Name: "Emma Wilson", Role: "Marketing Lead", Connections: []string{"2", "4"}},
		{ID: "4", Name: "James Rodriguez", Role: "Sales Manager", Connections: []string{"3"}},
		{ID: "5", Name: "Olivia Park", Role: "Data Scientist", Connections: []string{"1", "6"}},
		{ID: "6", Name: "David Thompson", Role: "Founder", Connections: []string{"5"}},
	}
}

// LoadPeople reads a people snapshot from a JSON file. The file holds either
// a top-level array or an object with a "people" array. Entries without a
// name are skipped; entries without an id get a generated one (they can
// still be connected *from*, just not referenced by others).
func LoadPeople(path string) ([]Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePeople(data)
}

// ParsePeople decodes a people JSON document.
func ParsePeople(data []byte) ([]Person, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid people JSON")
	}

	root := gjson.ParseBytes(data)
	list := root
	if root.IsObject() {
		list = root.Get("people")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("people JSON must be an array or have a \"people\" array")
	}

	var people []Person
	list.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			return true
		}
		p := Person{
			ID:   entry.Get("id").String(),
			Name: entry.Get("name").String(),
			Role: entry.Get("role").String(),
		}
		if p.Name == "" {
			return true
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		entry.Get("connections").ForEach(func(_, c gjson.Result) bool {
			if s := c.String(); s != "" {
				p.Connections = append(p.Connections, s)
			}
			return true
		})
		people = append(people, p)
		return true
	})

	return people, nil
}
