// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirandahotel/api/pkg/datefmt"
)

/*
TestParse covers both accepted layouts and rejection of everything else.
*/
func TestParse(t *testing.T) {
	parsed, err := datefmt.Parse("2026-09-10T14:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC), parsed)

	parsed, err = datefmt.Parse("2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), parsed)

	for _, input := range []string{"", "10/09/2026", "not-a-date", "2026-13-40"} {
		_, err := datefmt.Parse(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}
