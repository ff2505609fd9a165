package platform

import (
	"regexp"
	"testing"

	"github.com/mj1618/keycycle/internal/model"
)

func sampleWindows() []model.Window {
	return []model.Window{
		{Handle: 1, Title: "main.go - keycycle - Visual Studio Code", Backend: "win32", Visible: true},
		{Handle: 2, Title: "Untitled - Notepad", Backend: "win32", Visible: true},
		{Handle: 3, Title: "Visual Studio Code", Backend: "win32"},
		{Handle: 4, Title: "Visual Studio Code", Backend: "uia", Visible: true},
	}
}

func TestFilterWindows(t *testing.T) {
	vscode := regexp.MustCompile(".*Visual Studio Code.*")
	tests := []struct {
		name string
		opts ListOptions
		want []model.Handle
	}{
		{"no filter", ListOptions{}, []model.Handle{1, 2, 3, 4}},
		{"title", ListOptions{Title: vscode}, []model.Handle{1, 3, 4}},
		{"title and backend", ListOptions{Title: vscode, Backend: "win32"}, []model.Handle{1, 3}},
		{"visible only", ListOptions{Title: vscode, Backend: "win32", VisibleOnly: true}, []model.Handle{1}},
		{"no match", ListOptions{Title: regexp.MustCompile("^Excel$")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterWindows(sampleWindows(), tt.opts)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d windows, want %d", len(got), len(tt.want))
			}
			for i, w := range got {
				if w.Handle != tt.want[i] {
					t.Errorf("window %d: handle %d, want %d", i, w.Handle, tt.want[i])
				}
			}
		})
	}
}
