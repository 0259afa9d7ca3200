package rules

import "testing"

func TestCompile(t *testing.T) {
	progs, err := Compile([]Rule{
		{File: "/f", Profile: "prod", When: `env["DEPLOY_ENV"] == "prod"`},
		{File: "/f", Profile: "default"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if progs[0] == nil {
		t.Error("non-empty when should compile to a program")
	}
	if progs[1] != nil {
		t.Error("empty when should have no program")
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile([]Rule{{File: "/f", Profile: "p", When: `env[`}})
	if err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestCompileNotBool(t *testing.T) {
	_, err := Compile([]Rule{{File: "/f", Profile: "p", When: `env["X"]`}})
	if err == nil {
		t.Fatal("a when expression must be boolean")
	}
}

func TestSelect(t *testing.T) {
	rs := []Rule{
		{File: "/other", Profile: "nope"},
		{File: "/f", Profile: "staging", When: `env["DEPLOY_ENV"] == "staging"`},
		{File: "/f", Profile: "prod", When: `env["DEPLOY_ENV"] == "prod"`},
		{File: "/f", Profile: "default"},
	}

	for _, tc := range []struct {
		name    string
		env     map[string]string
		profile string
	}{
		{"staging", map[string]string{"DEPLOY_ENV": "staging"}, "staging"},
		{"prod", map[string]string{"DEPLOY_ENV": "prod"}, "prod"},
		{"fallthrough", map[string]string{"DEPLOY_ENV": "dev"}, "default"},
		{"empty env", nil, "default"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Select(rs, "/f", tc.env)
			if !ok || got != tc.profile {
				t.Errorf("got (%q, %v), want (%q, true)", got, ok, tc.profile)
			}
		})
	}
}

func TestSelectNoMatch(t *testing.T) {
	rs := []Rule{
		{File: "/f", Profile: "prod", When: `env["DEPLOY_ENV"] == "prod"`},
	}
	if got, ok := Select(rs, "/f", nil); ok {
		t.Errorf("got (%q, true), want no match", got)
	}
	if got, ok := Select(rs, "/untracked", map[string]string{"DEPLOY_ENV": "prod"}); ok {
		t.Errorf("got (%q, true) for a file with no rules", got)
	}
}
