package validate

import "testing"

func TestEmailAccepted(t *testing.T) {
	for _, email := range []string{
		"ana@duocuc.cl",
		"  ana@duocuc.cl  ",
		"ANA@DUOCUC.CL",
		"profe@profesor.duoc.cl",
	} {
		if msg := Email(email); msg != "" {
			t.Fatalf("expected %q valid, got %q", email, msg)
		}
	}
}

func TestEmailDomainRejected(t *testing.T) {
	msg := Email("ana@gmail.com")
	if msg != "Solo se aceptan correos @duocuc.cl o @profesor.duoc.cl" {
		t.Fatalf("expected domain message, got %q", msg)
	}
}

func TestEmailFormatRejected(t *testing.T) {
	msg := Email("not-an-email")
	if msg != "El formato del correo es incorrecto" {
		t.Fatalf("expected format message, got %q", msg)
	}
}

func TestEmailEmpty(t *testing.T) {
	if msg := Email("   "); msg != "El correo no puede estar vacío" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@DuocUC.cl "); got != "ana@duocuc.cl" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"Ana", false},
		{"Anai", true},
		{"María", true},
		{"Ana1", false},
		{"NombreDemasiadoLargoParaPasar", false},
	}
	for _, c := range cases {
		msg := Name(c.in)
		if c.valid && msg != "" {
			t.Fatalf("expected %q valid, got %q", c.in, msg)
		}
		if !c.valid && msg == "" {
			t.Fatalf("expected %q invalid", c.in)
		}
	}
}

func TestPassword(t *testing.T) {
	if msg := Password(""); msg == "" {
		t.Fatal("expected empty password rejected")
	}
	if msg := Password("abc123"); msg != "" {
		t.Fatalf("expected valid, got %q", msg)
	}
}

func TestConfirmPasswordMismatch(t *testing.T) {
	if msg := ConfirmPassword("abc123", "abc124"); msg != "Las contraseñas no coinciden" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := ConfirmPassword("abc123", "abc123"); msg != "" {
		t.Fatalf("expected match accepted, got %q", msg)
	}
}

func TestAddress(t *testing.T) {
	if msg := Address("Av. Siempre Viva 742"); msg != "" {
		t.Fatalf("expected valid, got %q", msg)
	}
	if msg := Address("Av"); msg == "" {
		t.Fatal("expected short address rejected")
	}
}

func TestPhone(t *testing.T) {
	if msg := Phone(""); msg != "" {
		t.Fatalf("phone should be optional, got %q", msg)
	}
	if msg := Phone("987654321"); msg != "" {
		t.Fatalf("expected valid, got %q", msg)
	}
	if msg := Phone("98765432a"); msg == "" {
		t.Fatal("expected non-digit phone rejected")
	}
	if msg := Phone("1234567"); msg == "" {
		t.Fatal("expected short phone rejected")
	}
}
