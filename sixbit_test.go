package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// armour encodes sextet values into payload armour characters, the reverse of
// Payload.six.
func armour(values ...int) string {
	chars := make([]byte, len(values))
	for i, v := range values {
		if v < 40 {
			chars[i] = byte(v + 48)
		} else {
			chars[i] = byte(v + 56)
		}
	}
	return string(chars)
}

func TestPayloadSix(t *testing.T) {
	var testCases = []struct {
		name      string
		givenChar byte
		expect    int
		expectOK  bool
	}{
		{name: "lowest armour char", givenChar: '0', expect: 0, expectOK: true},
		{name: "highest of low range", givenChar: 'W', expect: 39, expectOK: true},
		{name: "lowest of high range", givenChar: '`', expect: 40, expectOK: true},
		{name: "highest armour char", givenChar: 'w', expect: 63, expectOK: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPayload(string(tc.givenChar), 0)
			v, ok := p.six(0)
			assert.Equal(t, tc.expect, v)
			assert.Equal(t, tc.expectOK, ok)
		})
	}

	t.Run("out of range position is absent", func(t *testing.T) {
		p := NewPayload("0", 0)
		_, ok := p.six(1)
		assert.False(t, ok)
	})
}

func TestPayloadUnsigned(t *testing.T) {
	var testCases = []struct {
		name        string
		givenArmour string
		whenStart   int
		whenLength  int
		expect      int
		expectOK    bool
	}{
		{name: "whole first char", givenArmour: armour(0b101010), whenStart: 0, whenLength: 6, expect: 0b101010, expectOK: true},
		{name: "field inside one char", givenArmour: armour(0b101010), whenStart: 1, whenLength: 3, expect: 0b010, expectOK: true},
		{name: "field across two chars", givenArmour: armour(0b000011, 0b110000), whenStart: 4, whenLength: 4, expect: 0b1111, expectOK: true},
		{name: "field across three chars", givenArmour: armour(0b000001, 0b111111, 0b100000), whenStart: 5, whenLength: 8, expect: 0xFF, expectOK: true},
		{name: "single bit", givenArmour: armour(0b000100), whenStart: 3, whenLength: 1, expect: 1, expectOK: true},
		{name: "range past end is absent", givenArmour: armour(0, 0), whenStart: 8, whenLength: 6, expectOK: false},
		{name: "empty payload is absent", givenArmour: "", whenStart: 0, whenLength: 1, expectOK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPayload(tc.givenArmour, 0)
			v, ok := p.Unsigned(tc.whenStart, tc.whenLength)
			assert.Equal(t, tc.expectOK, ok)
			if tc.expectOK {
				assert.Equal(t, tc.expect, v)
			}
		})
	}
}

func TestPayloadSigned(t *testing.T) {
	var testCases = []struct {
		name        string
		givenArmour string
		whenStart   int
		whenLength  int
		expect      int
	}{
		{name: "positive", givenArmour: armour(0b011111), whenStart: 0, whenLength: 6, expect: 31},
		{name: "minus one", givenArmour: armour(0b111111), whenStart: 0, whenLength: 6, expect: -1},
		{name: "most negative", givenArmour: armour(0b100000), whenStart: 0, whenLength: 6, expect: -32},
		{name: "eight bit across chars", givenArmour: armour(0b111111, 0b110000), whenStart: 0, whenLength: 8, expect: -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPayload(tc.givenArmour, 0)
			v, ok := p.Signed(tc.whenStart, tc.whenLength)
			require.True(t, ok)
			assert.Equal(t, tc.expect, v)
		})
	}
}

func TestPayloadScaled(t *testing.T) {
	p := NewPayload(armour(0b001111, 0b111111), 0) // 1023 over 10 bits at offset 2
	v, ok := p.UnsignedScaled(2, 10, 1)
	require.True(t, ok)
	assert.InDelta(t, 102.3, v, 1e-9)

	sp := NewPayload(armour(0b111111, 0b110000), 0)
	sv, ok := sp.SignedScaled(0, 8, 3)
	require.True(t, ok)
	assert.InDelta(t, -0.001, sv, 1e-12)
}

func TestPayloadBoolean(t *testing.T) {
	p := NewPayload(armour(0b010000), 0)
	v, ok := p.Boolean(1)
	require.True(t, ok)
	assert.True(t, v)

	v, ok = p.Boolean(0)
	require.True(t, ok)
	assert.False(t, v)

	_, ok = p.Boolean(6)
	assert.False(t, ok)
}

func TestPayloadEnum(t *testing.T) {
	table := []string{"zero", "one", "two"}

	p := NewPayload(armour(0b000001), 0)
	v, ok := p.Enum(4, 2, table)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	p = NewPayload(armour(0b000011), 0)
	_, ok = p.Enum(4, 2, table)
	assert.False(t, ok, "out of table range must be absent")
}

func TestPayloadText(t *testing.T) {
	var testCases = []struct {
		name        string
		givenValues []int
		expect      string
	}{
		{name: "plain characters", givenValues: []int{1, 9, 19}, expect: "AIS"},
		{name: "stops at @ padding", givenValues: []int{1, 2, 0, 3}, expect: "AB"},
		{name: "trims trailing spaces", givenValues: []int{1, 2, 32, 32}, expect: "AB"},
		{name: "high range maps to itself", givenValues: []int{33, 50}, expect: "!2"},
		{name: "stops at payload end", givenValues: []int{1, 2}, expect: "AB"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPayload(armour(tc.givenValues...), 0)
			assert.Equal(t, tc.expect, p.Text(0, 10*6))
		})
	}
}

func TestPayloadBitLength(t *testing.T) {
	assert.Equal(t, 166, NewPayload("0000000000000000000000000000", 2).BitLength())
}

func TestPayloadUnsignedProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(0, 63), 1, 80).Draw(t, "values")
		p := NewPayload(armour(values...), 0)

		bits := 6 * len(values)
		start := rapid.IntRange(0, bits-1).Draw(t, "start")
		maxLen := bits - start
		if maxLen > 32 {
			maxLen = 32
		}
		length := rapid.IntRange(1, maxLen).Draw(t, "length")

		v, ok := p.Unsigned(start, length)
		if !ok {
			t.Fatalf("in-range read (%d,%d) of %d bits reported absent", start, length, bits)
		}
		if v < 0 || v >= 1<<length {
			t.Fatalf("unsigned value %d outside [0, 2^%d)", v, length)
		}

		sv, ok := p.Signed(start, length)
		if !ok {
			t.Fatalf("in-range signed read reported absent")
		}
		if sv < -(1<<(length-1)) || sv > 1<<(length-1)-1 {
			t.Fatalf("signed value %d outside [-2^%d, 2^%d)", sv, length-1, length-1)
		}
	})
}
