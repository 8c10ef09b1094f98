package wordpool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	csv := `answer,clue,definition,type,fodder,indicator,mechanism
silent,"Confused listen to be quiet (6)",be quiet,Anagram,listen,confused,anagram of listen
SENT,"Dispatched in tales entered (4)",dispatched,Hidden Word,tales entered,in,hidden in tales entered
`
	records, skipped, err := LoadCSV(writeFile(t, "clues.csv", csv))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, records, 2)

	assert.Equal(t, "SILENT", records[0].Answer)
	assert.Equal(t, "Confused listen to be quiet (6)", records[0].Clue)
	assert.Equal(t, "listen", records[0].Wordplay.Fodder)
	assert.Equal(t, "confused", records[0].Wordplay.Indicator)
	assert.Equal(t, "Anagram", records[0].Type)
	assert.Equal(t, "SENT", records[1].Answer)
}

func TestLoadCSVSkipsBadRows(t *testing.T) {
	csv := `answer,clue,type,fodder
silent,"Confused listen to be quiet (6)",Anagram,listen
,"Row with no answer (6)",Anagram,listen
rats,"Star turned vermin (4)",Reversal,star
`
	records, skipped, err := LoadCSV(writeFile(t, "clues.csv", csv))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Len(t, skipped, 1)
	assert.Equal(t, 3, skipped[0].Line)
	assert.Contains(t, skipped[0].Error(), "no answer")
}

func TestLoadCSVHeaderVariants(t *testing.T) {
	// Header matching is case-insensitive and extra columns are ignored.
	csv := `Answer,CLUE,Outer,Inner,Enumeration,notes
paint,"Dad keeps popular coating (5)",pat,in,"(5)",ignore me
`
	records, skipped, err := LoadCSV(writeFile(t, "clues.csv", csv))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "PAINT", records[0].Answer)
	assert.Equal(t, "pat", records[0].Wordplay.Outer)
	assert.Equal(t, "in", records[0].Wordplay.Inner)
	assert.Equal(t, "(5)", records[0].Enumeration)
}

func TestLoadCSVMissingAnswerColumn(t *testing.T) {
	_, _, err := LoadCSV(writeFile(t, "clues.csv", "clue,type\nfoo,Anagram\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "answer")
}

func TestLoadJSON(t *testing.T) {
	data := `[
		{
			"answer": "SILENT",
			"clue": "Confused listen to be quiet (6)",
			"type": "Anagram",
			"wordplay_parts": {"fodder": "listen", "indicator": "confused"}
		}
	]`
	records, err := LoadJSON(writeFile(t, "clues.json", data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "SILENT", records[0].Answer)
	assert.Equal(t, "listen", records[0].Wordplay.Fodder)
}

func TestLoadDispatch(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, _, err := Load("clues.xml")
		require.Error(t, err)
	})

	t.Run("csv", func(t *testing.T) {
		path := writeFile(t, "clues.csv", "answer,clue\nsilent,\"Quietly (6)\"\n")
		records, _, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "clues.json", `[{"answer": "SILENT"}]`)
		records, skipped, err := Load(path)
		require.NoError(t, err)
		assert.Nil(t, skipped)
		assert.Len(t, records, 1)
	})
}
