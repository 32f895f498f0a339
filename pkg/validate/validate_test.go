package validate

import (
	"strings"
	"testing"

	"tableflip.dev/gorev/pkg/msg"
)

func newValidator() *Validator {
	return New(msg.NewLocalizer(msg.LanguageTr))
}

func validRegistration() Registration {
	return Registration{
		Username:        "ayse",
		Email:           "ayse@example.com",
		Password:        "Gizli1si!",
		ConfirmPassword: "Gizli1si!",
	}
}

func TestRegisterUserValid(t *testing.T) {
	v := newValidator()
	if errs := v.RegisterUser(validRegistration()); !errs.OK() {
		t.Fatalf("expected valid registration, got %v", errs)
	}

	full := validRegistration()
	full.FirstName = "Ayşe"
	full.LastName = "Çelik"
	full.PhoneNumber = "+90 (555) 123-4567"
	if errs := v.RegisterUser(full); !errs.OK() {
		t.Fatalf("expected valid registration with optional fields, got %v", errs)
	}
}

func TestRegisterUserUsername(t *testing.T) {
	v := newValidator()
	cases := []struct {
		name     string
		username string
		ok       bool
	}{
		{"empty", "", false},
		{"two runes", "ab", false},
		{"three runes", "abc", true},
		{"fifty runes", "a" + strings.Repeat("b", 49), true},
		{"fifty one runes", "a" + strings.Repeat("b", 50), false},
		{"leading digit", "1abc", false},
		{"underscore ok", "a_b_c", true},
		{"dash rejected", "a-b-c", false},
	}
	for _, tc := range cases {
		in := validRegistration()
		in.Username = tc.username
		errs := v.RegisterUser(in)
		if _, bad := errs["username"]; bad == tc.ok {
			t.Fatalf("%s: expected ok=%v, got %v", tc.name, tc.ok, errs)
		}
	}
}

func TestRegisterUserEmail(t *testing.T) {
	v := newValidator()
	cases := []struct {
		name  string
		email string
		ok    bool
	}{
		{"empty", "", false},
		{"plain", "a@b.co", true},
		{"no tld", "a@b", false},
		{"no at", "a.b.co", false},
		{"too long", strings.Repeat("a", 95) + "@ex.com", false},
	}
	for _, tc := range cases {
		in := validRegistration()
		in.Email = tc.email
		errs := v.RegisterUser(in)
		if _, bad := errs["email"]; bad == tc.ok {
			t.Fatalf("%s: expected ok=%v, got %v", tc.name, tc.ok, errs)
		}
	}
}

func TestRegisterUserPassword(t *testing.T) {
	v := newValidator()
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"empty", "", false},
		{"seven runes", "Aa1!aaa", false},
		{"eight runes", "Aa1!aaaa", true},
		{"no upper", "aa1!aaaa", false},
		{"no lower", "AA1!AAAA", false},
		{"no digit", "Aaa!aaaa", false},
		{"no symbol", "Aa1aaaaa", false},
		{"space rejected", "Aa1! aaaa", false},
		{"all symbol set", "Aa1@$!%*?&._-", true},
	}
	for _, tc := range cases {
		in := validRegistration()
		in.Password = tc.password
		in.ConfirmPassword = tc.password
		errs := v.RegisterUser(in)
		if _, bad := errs["password"]; bad == tc.ok {
			t.Fatalf("%s: expected ok=%v, got %v", tc.name, tc.ok, errs)
		}
	}
}

func TestRegisterUserConfirmPassword(t *testing.T) {
	v := newValidator()

	in := validRegistration()
	in.ConfirmPassword = ""
	errs := v.RegisterUser(in)
	if errs["confirmPassword"] != msg.NewLocalizer(msg.LanguageTr).T(msg.ConfirmPasswordRequired) {
		t.Fatalf("expected confirmation required, got %v", errs)
	}

	in = validRegistration()
	in.ConfirmPassword = in.Password + "x"
	errs = v.RegisterUser(in)
	if _, bad := errs["confirmPassword"]; !bad {
		t.Fatalf("expected mismatch error, got %v", errs)
	}
}

func TestRegisterUserOptionalFields(t *testing.T) {
	v := newValidator()

	in := validRegistration()
	in.FirstName = "Ayşe123"
	if errs := v.RegisterUser(in); errs["firstName"] == "" {
		t.Fatalf("expected first name format error, got %v", errs)
	}

	in = validRegistration()
	in.LastName = strings.Repeat("a", 51)
	if errs := v.RegisterUser(in); errs["lastName"] == "" {
		t.Fatalf("expected last name length error, got %v", errs)
	}

	in = validRegistration()
	in.PhoneNumber = "555-123"
	if errs := v.RegisterUser(in); errs["phoneNumber"] == "" {
		t.Fatalf("expected phone digit-count error, got %v", errs)
	}

	in = validRegistration()
	in.PhoneNumber = "555#1234567"
	if errs := v.RegisterUser(in); errs["phoneNumber"] == "" {
		t.Fatalf("expected phone format error, got %v", errs)
	}
}

func TestLoginUser(t *testing.T) {
	v := newValidator()

	if errs := v.LoginUser(Credentials{Username: "ayse", Password: "Gizli1si!"}); !errs.OK() {
		t.Fatalf("expected valid credentials, got %v", errs)
	}

	errs := v.LoginUser(Credentials{})
	if _, bad := errs["username"]; !bad {
		t.Fatalf("expected username required, got %v", errs)
	}
	if _, bad := errs["password"]; !bad {
		t.Fatalf("expected password required, got %v", errs)
	}
}

func TestErrorsFirstStable(t *testing.T) {
	v := newValidator()
	errs := v.RegisterUser(Registration{})
	if errs.OK() {
		t.Fatalf("expected errors for empty registration")
	}
	if errs.First() != errs["username"] {
		t.Fatalf("expected username message first, got %q", errs.First())
	}
}
