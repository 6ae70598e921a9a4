package scale_test

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-recipes/internal/scale"
)

func TestScaleIngredientsIdentityFactor(t *testing.T) {
	in := []string{"2 cups sugar", "1/2 cup milk", "Salt to taste"}
	got := scale.ScaleIngredients(in, 1)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("factor 1 must return input unchanged, got %v", got)
	}
	// The short-circuit must preserve original formatting exactly, fractions
	// included.
	if got[1] != "1/2 cup milk" {
		t.Fatalf("identity scaling reformatted %q", got[1])
	}
}

func TestScaleIngredientsDoubles(t *testing.T) {
	got := scale.ScaleIngredients([]string{"2 cups sugar"}, 2)
	want := []string{"4 cups sugar"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestScaleIngredientsFraction(t *testing.T) {
	got := scale.ScaleIngredients([]string{"1/2 cup milk"}, 2)
	want := []string{"1 cup milk"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestScaleIngredientsSpacedFraction(t *testing.T) {
	got := scale.ScaleIngredients([]string{"1 / 2 cup milk"}, 3)
	want := []string{"1.5 cup milk"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestScaleIngredientsRoundHalfUp(t *testing.T) {
	// Pins the rounding rule: 0.125 * 2 = 0.25, never 0.2 or 0.3.
	got := scale.ScaleIngredients([]string{"0.125 tsp saffron"}, 2)
	want := []string{"0.25 tsp saffron"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	// 1/3 * 2 = 0.666... rounds to 0.67 at two decimal places.
	got = scale.ScaleIngredients([]string{"1/3 cup stock"}, 2)
	want = []string{"0.67 cup stock"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestScaleIngredientsStripsTrailingZeros(t *testing.T) {
	got := scale.ScaleIngredients([]string{"1.5 cups flour"}, 2)
	want := []string{"3 cups flour"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	got = scale.ScaleIngredients([]string{"2 eggs"}, 0.75)
	want = []string{"1.5 eggs"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestScaleIngredientsNonNumericPassThrough(t *testing.T) {
	got := scale.ScaleIngredients([]string{"Salt to taste"}, 3)
	want := []string{"Salt to taste"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestScaleIngredientsMultipleTokensPerLine(t *testing.T) {
	got := scale.ScaleIngredients([]string{"2 to 3 cloves garlic"}, 2)
	want := []string{"4 to 6 cloves garlic"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestScaleIngredientsEmptyInput(t *testing.T) {
	if got := scale.ScaleIngredients(nil, 2); len(got) != 0 {
		t.Fatalf("expected empty output, got %v", got)
	}
}

func TestScaleLineHalving(t *testing.T) {
	if got := scale.ScaleLine("4 cups stock", 0.5); got != "2 cups stock" {
		t.Fatalf("got %q", got)
	}
}

func TestScaleIngredientsDeterministic(t *testing.T) {
	in := []string{"1/2 cup milk", "1.25 cups flour"}
	first := scale.ScaleIngredients(in, 1.5)
	second := scale.ScaleIngredients(in, 1.5)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scaling not deterministic: %v vs %v", first, second)
	}
}
