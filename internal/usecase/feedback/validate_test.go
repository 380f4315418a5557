package feedback

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		ok   bool
		errs int
	}{
		{"both filled", Input{User: "Alice", Comment: "Great service"}, true, 0},
		{"empty user", Input{User: "", Comment: "Great service"}, false, 1},
		{"empty comment", Input{User: "Alice", Comment: ""}, false, 1},
		{"both empty", Input{User: "", Comment: ""}, false, 2},
		{"whitespace user", Input{User: "   ", Comment: "ok"}, false, 1},
		{"whitespace comment", Input{User: "Alice", Comment: "\t\n "}, false, 1},
	}
	for _, tc := range cases {
		ok, errs := Validate(tc.in)
		if ok != tc.ok {
			t.Fatalf("%s: ожидали ok=%v, получили %v", tc.name, tc.ok, ok)
		}
		if len(errs) != tc.errs {
			t.Fatalf("%s: ожидали %d ошибок, получили %d (%v)", tc.name, tc.errs, len(errs), errs)
		}
	}
}

func TestValidateIsPure(t *testing.T) {
	in := Input{User: "Alice", Comment: "ok"}
	for i := 0; i < 3; i++ {
		if ok, _ := Validate(in); !ok {
			t.Fatal("повторный вызов изменил результат")
		}
	}
}
