package phonetext

import "testing"

func TestExtractPossibleNumber(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Tel:0800-345-600", "0800-345-600"},
		{"Tel:0800 FOR PIZZA", "0800 FOR PIZZA"},
		{"Tel:+800-345-600", "+800-345-600"},
		{"call +44 20 7946 0958...", "+44 20 7946 0958"},
		{"０２２-３３３", "０２２-３３３"},
		// Extraction starts at the first plus or digit, so a leading
		// bracket or label is dropped along with the noise.
		{"Num-123#", "123#"}, // trailing # survives the trim
		{"(650) 253-0000.", "650) 253-0000"},
		// Everything after a second-number marker is dropped.
		{"(530) 583-6985 x302/x2303", "530) 583-6985 x302"},
		{"0120 \\ x123", "0120 "},
		// Nothing number-like at all.
		{"Num-....", ""},
		{"Lorem ipsum", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractPossibleNumber(tt.input); got != tt.want {
			t.Errorf("ExtractPossibleNumber(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsViablePhoneNumber(t *testing.T) {
	viable := []string{
		"+1-800-555-0199",
		"1-800-FLOWERS",
		"+44 20 7946 0958",
		"(650) 253-0000",
		"0800-345-600 ext. 1234",
		"0800-345-600 x45",
		"0800-345-600 extension 45",
		"0800-345-600 anexo 45",
		"０３-３４５６-７８９０", // fullwidth digits and punctuation
		"٠١٢-٣٤٥-٦٧٨",   // Arabic-Indic digits
		"1 800 234#",
	}
	for _, s := range viable {
		if !IsViablePhoneNumber(s) {
			t.Errorf("IsViablePhoneNumber(%q) = false, want true", s)
		}
	}

	notViable := []string{
		"",
		"1",
		"12",    // below minimum NSN length
		"12+",   // two digit groups only
		"abcd",  // no digits at all
		"1-800", // still only two digit groups
		"tel:253-0000",
		"555-xyz-234!",
	}
	for _, s := range notViable {
		if IsViablePhoneNumber(s) {
			t.Errorf("IsViablePhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestIsViablePhoneNumber_ShortInputs(t *testing.T) {
	// Anything under MinLengthNSN characters is rejected before the
	// grammar is consulted.
	for _, s := range []string{"", "1", "+1", "12", "٣٤"} {
		if IsViablePhoneNumber(s) {
			t.Errorf("IsViablePhoneNumber(%q) = true for short input", s)
		}
	}
}

func TestMaybeStripExtension(t *testing.T) {
	tests := []struct {
		input   string
		number  string
		extn    string
	}{
		{"1234-567-8901 ext. 1234", "1234-567-8901", "1234"},
		{"1234-567-8901 x 45", "1234-567-8901", "45"},
		{"1234-567-8901 extension 45", "1234-567-8901", "45"},
		{"1234-567-8901 extensión 45", "1234-567-8901", "45"},
		{"1234-567-8901 anexo 45", "1234-567-8901", "45"},
		{"1234-567-8901 int 45", "1234-567-8901", "45"},
		{"1234-567-8901#45", "1234-567-8901", "45"},
		{"1234-567-8901 -45#", "1234-567-8901", "45"},
		// No extension suffix: input passes through untouched.
		{"1234-567-8901", "1234-567-8901", ""},
		{"+44 20 7946 0958", "+44 20 7946 0958", ""},
		// Stripping would leave a non-viable stub, so nothing is stripped.
		{"x45", "x45", ""},
	}
	for _, tt := range tests {
		number, extn := MaybeStripExtension(tt.input)
		if number != tt.number || extn != tt.extn {
			t.Errorf("MaybeStripExtension(%q) = (%q, %q), want (%q, %q)",
				tt.input, number, extn, tt.number, tt.extn)
		}
	}
}
