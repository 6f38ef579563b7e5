package colorspace

import "testing"

func TestParseHex(t *testing.T) {
	c, ok := Parse("#1A2B3C")
	if !ok || c.R != 0x1A || c.G != 0x2B || c.B != 0x3C || c.A != 1 {
		t.Fatalf("Parse(#1A2B3C) = %+v, %v", c, ok)
	}

	// Shorthand expands by channel duplication.
	short, ok := Parse("#abc")
	if !ok || short.R != 0xAA || short.G != 0xBB || short.B != 0xCC {
		t.Fatalf("Parse(#abc) = %+v, %v", short, ok)
	}

	if _, ok := Parse("#12345"); ok {
		t.Error("five-digit hex accepted")
	}
	if _, ok := Parse("garbage"); ok {
		t.Error("non-color accepted")
	}
}

func TestHexAlphaByte(t *testing.T) {
	c, ok := Parse("rgba(0, 0, 0, 0.5)")
	if !ok {
		t.Fatal("rgba parse failed")
	}
	// 0.5 * 255 rounds to 128 = 0x80.
	if got := c.Hex(); got != "#00000080" {
		t.Fatalf("Hex() = %q", got)
	}
}

func TestConvertRGB(t *testing.T) {
	got, ok := Convert("rgb(255, 0, 0)", "hex")
	if !ok || got != "#FF0000" {
		t.Fatalf("Convert(rgb) = %q, %v", got, ok)
	}
	got, ok = Convert("#FF0000", "rgb")
	if !ok || got != "rgb(255, 0, 0)" {
		t.Fatalf("Convert(hex, rgb) = %q, %v", got, ok)
	}
}

func TestConvertHSL(t *testing.T) {
	got, ok := Convert("hsl(0, 100%, 50%)", "hex")
	if !ok || got != "#FF0000" {
		t.Fatalf("Convert(hsl red) = %q, %v", got, ok)
	}
	got, ok = Convert("#FF0000", "hsl")
	if !ok || got != "hsl(0, 100%, 50%)" {
		t.Fatalf("Convert(red, hsl) = %q, %v", got, ok)
	}
	got, ok = Convert("hsl(120, 50%, 25%)", "hsl")
	if !ok || got != "hsl(120, 50%, 25%)" {
		t.Fatalf("hsl round-trip = %q, %v", got, ok)
	}
}

// Every valid hex value survives hex -> rgb -> hex unchanged when no alpha
// rounding is involved.
func TestRoundTripHexThroughRGB(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#1A2B3C", "#FF8040", "#0D0E0F"} {
		rgb, ok := Convert(hex, "rgb")
		if !ok {
			t.Fatalf("Convert(%q, rgb) failed", hex)
		}
		back, ok := Convert(rgb, "hex")
		if !ok {
			t.Fatalf("Convert(%q, hex) failed", rgb)
		}
		if back != hex {
			t.Errorf("round trip %s -> %s -> %s", hex, rgb, back)
		}
	}
}

func TestConvertUnknownTarget(t *testing.T) {
	if _, ok := Convert("#FFFFFF", "cmyk"); ok {
		t.Error("unknown target accepted")
	}
}
