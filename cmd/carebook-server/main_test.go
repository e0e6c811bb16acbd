package main

import "testing"

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{"serve": false, "migrate": false, "seed": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing %q subcommand", name)
		}
	}
}

func TestMigrateSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, cmd := range root.Commands() {
		if cmd.Name() != "migrate" {
			continue
		}
		names := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			names[sub.Name()] = true
		}
		if !names["up"] || !names["status"] {
			t.Errorf("migrate subcommands = %v, want up and status", names)
		}
		return
	}
	t.Fatal("migrate command not registered")
}
