package checkout

import "testing"

func TestFormatCardNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "123", want: "123"},
		{in: "1234", want: "1234"},
		{in: "12345", want: "1234 5"},
		{in: "1234567890123456", want: "1234 5678 9012 3456"},
		{in: "1234 5678 9012 3456", want: "1234 5678 9012 3456"},
		{in: "12345678901234567890", want: "1234 5678 9012 3456"},
		{in: "12ab34", want: "1234"},
	}

	for _, tt := range tests {
		if got := FormatCardNumber(tt.in); got != tt.want {
			t.Fatalf("FormatCardNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatExpiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "1", want: "1"},
		{in: "12", want: "12/"},
		{in: "1226", want: "12/26"},
		{in: "12/26", want: "12/26"},
		{in: "122634", want: "12/26"},
	}

	for _, tt := range tests {
		if got := FormatExpiry(tt.in); got != tt.want {
			t.Fatalf("FormatExpiry(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCVV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "123", want: "123"},
		{in: "12345", want: "1234"},
		{in: "1a2b3c", want: "123"},
	}

	for _, tt := range tests {
		if got := FormatCVV(tt.in); got != tt.want {
			t.Fatalf("FormatCVV(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCPF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "12345678900", want: "123.456.789-00"},
		{in: "123.456.789-00", want: "123.456.789-00"},
		{in: "1234", want: "1234"},
		{in: "123456789001", want: "123456789001"},
	}

	for _, tt := range tests {
		if got := FormatCPF(tt.in); got != tt.want {
			t.Fatalf("FormatCPF(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "1133334444", want: "(11) 3333-4444"},
		{in: "11999998888", want: "(11) 99999-8888"},
		{in: "(11) 99999-8888", want: "(11) 99999-8888"},
		{in: "119", want: "119"},
		{in: "119999988881", want: "119999988881"},
	}

	for _, tt := range tests {
		if got := FormatPhone(tt.in); got != tt.want {
			t.Fatalf("FormatPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Every mask must be idempotent: re-masking its own output changes nothing.
func TestFormatIdempotence(t *testing.T) {
	t.Parallel()

	masks := map[string]func(string) string{
		"card":   FormatCardNumber,
		"expiry": FormatExpiry,
		"cvv":    FormatCVV,
		"cpf":    FormatCPF,
		"phone":  FormatPhone,
	}
	inputs := []string{"", "1", "12", "1234", "12345678900", "1234567890123456", "11999998888"}

	for name, mask := range masks {
		for _, in := range inputs {
			once := mask(in)
			if twice := mask(once); twice != once {
				t.Fatalf("%s mask not idempotent for %q: %q != %q", name, in, twice, once)
			}
		}
	}
}
