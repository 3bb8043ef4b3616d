package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeople_TopLevelArray(t *testing.T) {
	people, err := ParsePeople([]byte(`[
		{"id": "a", "name": "Ada", "role": "engineer", "connections": ["b"]},
		{"id": "b", "name": "Bo"}
	]`))
	require.NoError(t, err)
	require.Len(t, people, 2)

	assert.Equal(t, "Ada", people[0].Name)
	assert.Equal(t, "engineer", people[0].Role)
	assert.Equal(t, []string{"b"}, people[0].Connections)
	assert.Empty(t, people[1].Connections)
}

func TestParsePeople_WrappedObject(t *testing.T) {
	people, err := ParsePeople([]byte(`{"people": [{"id": "a", "name": "Ada"}]}`))
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "a", people[0].ID)
}

func TestParsePeople_SkipsNamelessEntries(t *testing.T) {
	people, err := ParsePeople([]byte(`[
		{"id": "a"},
		{"id": "b", "name": "Bo"},
		"not an object"
	]`))
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "b", people[0].ID)
}

func TestParsePeople_GeneratesMissingIDs(t *testing.T) {
	people, err := ParsePeople([]byte(`[{"name": "Ada"}, {"name": "Bo"}]`))
	require.NoError(t, err)
	require.Len(t, people, 2)

	assert.NotEmpty(t, people[0].ID)
	assert.NotEmpty(t, people[1].ID)
	assert.NotEqual(t, people[0].ID, people[1].ID)
}

func TestParsePeople_RejectsInvalidJSON(t *testing.T) {
	_, err := ParsePeople([]byte(`{"people": [`))
	assert.Error(t, err)
}

func TestParsePeople_RejectsNonArrayDocument(t *testing.T) {
	_, err := ParsePeople([]byte(`{"nodes": []}`))
	assert.Error(t, err)

	_, err = ParsePeople([]byte(`"just a string"`))
	assert.Error(t, err)
}

func TestParsePeople_DropsEmptyConnectionStrings(t *testing.T) {
	people, err := ParsePeople([]byte(`[
		{"id": "a", "name": "Ada", "connections": ["", "b", ""]}
	]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, people[0].Connections)
}

func TestSamplePeople_BuildsCleanly(t *testing.T) {
	g := BuildGraph(SamplePeople(), V2{})
	assert.Len(t, g.Nodes, 6)
	assert.Len(t, g.Edges, 5)
}
