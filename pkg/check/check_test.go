package check_test

import (
	"errors"
	"net/http"
	"testing"

	"cost-item-service/pkg/check"
	pkgErrors "cost-item-service/pkg/errors"
)

func TestValidateInt64(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cases := map[string]int64{
			"2":                    2,
			"-15":                  -15,
			"0":                    0,
			"9223372036854775807":  9223372036854775807,
			"-9223372036854775808": -9223372036854775808,
		}
		for in, want := range cases {
			got, err := check.ValidateInt64(in)
			if err != nil {
				t.Errorf("ValidateInt64(%q) returned error: %v", in, err)
				continue
			}
			if got != want {
				t.Errorf("ValidateInt64(%q) = %d, want %d", in, got, want)
			}
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, in := range []string{"a", "1.5", "", "9223372036854775808", "1e3"} {
			_, err := check.ValidateInt64(in)
			if err == nil {
				t.Errorf("ValidateInt64(%q) expected error", in)
				continue
			}
			assertBadRequest(t, err)
		}
	})

	t.Run("Error Message Cites Input", func(t *testing.T) {
		_, err := check.ValidateInt64("a")
		want := "Error parsing string: 'a', not a valid integer"
		if err == nil || err.Error() != want {
			t.Errorf("got %v, want %q", err, want)
		}
	})
}

func TestValidateFloat64(t *testing.T) {
	got, err := check.ValidateFloat64("1.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.1 {
		t.Errorf("ValidateFloat64(\"1.1\") = %v", got)
	}

	_, err = check.ValidateFloat64("a")
	want := "Error parsing string: 'a', not a valid float"
	if err == nil || err.Error() != want {
		t.Errorf("got %v, want %q", err, want)
	}
	assertBadRequest(t, err)
}

func TestParseIDs(t *testing.T) {
	t.Run("Valid List", func(t *testing.T) {
		ids, err := check.ParseIDs("1,2,3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int64{1, 2, 3}
		if len(ids) != len(want) {
			t.Fatalf("got %v, want %v", ids, want)
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Fatalf("got %v, want %v", ids, want)
			}
		}
	})

	t.Run("Duplicates Kept", func(t *testing.T) {
		ids, err := check.ParseIDs("1,1,2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 3 {
			t.Errorf("duplicates should be preserved at parse stage, got %v", ids)
		}
	})

	t.Run("First Bad Token Fails", func(t *testing.T) {
		_, err := check.ParseIDs("a,2")
		want := "Error parsing string: 'a', not a valid integer"
		if err == nil || err.Error() != want {
			t.Errorf("got %v, want %q", err, want)
		}
	})
}

func TestCostItemFilterParams(t *testing.T) {
	t.Run("All Legal Keys", func(t *testing.T) {
		params := map[string]string{
			"id":    "1",
			"name":  "English Congregation",
			"price": "1.20",
			"notes": "1112223333",
		}
		if err := check.CostItemFilterParams(params); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Empty Params", func(t *testing.T) {
		if err := check.CostItemFilterParams(map[string]string{}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Unknown Key Rejected", func(t *testing.T) {
		err := check.CostItemFilterParams(map[string]string{"color": "red"})
		want := "the parameter 'color' is incorrect"
		if err == nil || err.Error() != want {
			t.Errorf("got %v, want %q", err, want)
		}
		assertBadRequest(t, err)
	})

	t.Run("ID Xor IDs", func(t *testing.T) {
		err := check.CostItemFilterParams(map[string]string{
			"id":   "1",
			"ids":  "1,2",
			"name": "English Congregation",
		})
		want := "select only one of them, id xor ids"
		if err == nil || err.Error() != want {
			t.Errorf("got %v, want %q", err, want)
		}
	})

	t.Run("Bad ID Value", func(t *testing.T) {
		err := check.CostItemFilterParams(map[string]string{"id": "abc"})
		if err == nil {
			t.Fatal("expected error")
		}
		assertBadRequest(t, err)
	})

	t.Run("Bad IDs Value", func(t *testing.T) {
		err := check.CostItemFilterParams(map[string]string{"ids": "1,x"})
		want := "Error parsing string: 'x', not a valid integer"
		if err == nil || err.Error() != want {
			t.Errorf("got %v, want %q", err, want)
		}
	})
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		t.Errorf("expected HTTPError, got %T", err)
		return
	}
	if httpErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", httpErr.StatusCode)
	}
}
