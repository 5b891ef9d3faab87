package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/doh-dns/internal/dns/domain"
)

func TestRenderTable(t *testing.T) {
	answers := []domain.Answer{
		{Name: "gmail.com.", Type: domain.RRTypeMX, TTL: 3599, Data: "5 gmail-smtp-in.l.google.com."},
		{Name: "gmail.com.", Type: domain.RRTypeMX, TTL: 3599, Data: "10 alt1.gmail-smtp-in.l.google.com."},
	}

	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, answers))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Type")
	assert.Contains(t, lines[0], "TTL")
	assert.Contains(t, lines[0], "Data")
	assert.Contains(t, lines[1], "gmail.com.")
	assert.Contains(t, lines[1], "MX")
	assert.Contains(t, lines[1], "3599")
	assert.Contains(t, lines[1], "5 gmail-smtp-in.l.google.com.")
	assert.Contains(t, lines[2], "10 alt1.gmail-smtp-in.l.google.com.")
}

func TestRenderTable_UnknownType(t *testing.T) {
	answers := []domain.Answer{
		{Name: "example.com.", Type: domain.RRType(999), TTL: 60, Data: "opaque"},
	}

	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, answers))
	assert.Contains(t, buf.String(), "UNKNOWN(999)")
}

func TestRootCmd_ArgValidation(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"one arg", []string{"mx"}},
		{"three args", []string{"mx", "gmail.com", "extra"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			assert.Error(t, err)
		})
	}
}

// An unknown record-type argument must fail before any network call.
func TestRootCmd_InvalidRecordType(t *testing.T) {
	cmd := newRootCmd()
	var errOut bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"bogus", "gmail.com"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownType)
}
