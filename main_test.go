/* main_test.go
 * Contains unit tests for main.go helper functions
 */

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitCSV_Basic tests splitting a simple list
func TestSplitCSV_Basic(t *testing.T) {
	result := splitCSV("Ohio State,Oregon,Indiana")
	assert.Equal(t, []string{"Ohio State", "Oregon", "Indiana"}, result)
}

// TestSplitCSV_TrimsWhitespace tests trimming around entries
func TestSplitCSV_TrimsWhitespace(t *testing.T) {
	result := splitCSV(" Ohio State , Oregon ")
	assert.Equal(t, []string{"Ohio State", "Oregon"}, result)
}

// TestSplitCSV_DropsEmptyEntries tests trailing and doubled commas
func TestSplitCSV_DropsEmptyEntries(t *testing.T) {
	result := splitCSV("Ohio State,,Oregon,")
	assert.Equal(t, []string{"Ohio State", "Oregon"}, result)
}

// TestSplitCSV_Empty tests an empty input
func TestSplitCSV_Empty(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Nil(t, splitCSV(" , ,"))
}
