package stringsx

import "testing"

func TestIsBlank(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: true,
		},
		{
			name:     "Spaces and tabs",
			input:    " \t\n",
			expected: true,
		},
		{
			name:     "Ideographic space",
			input:    "　",
			expected: true,
		},
		{
			name:     "Method name",
			input:    "returnStringWithArgument",
			expected: false,
		},
		{
			name:     "Padded name",
			input:    " test ",
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := IsBlank(tc.input); result != tc.expected {
				t.Errorf("Test %s failed: expected '%v', got '%v'", tc.name, tc.expected, result)
			}
		})
	}
}
