package brew

import (
	"reflect"
	"testing"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name:   "one per line",
			output: "git\nhtop\nwget\n",
			want:   []string{"git", "htop", "wget"},
		},
		{
			name:   "columnar output",
			output: "git\thtop\nwget\tjq\n",
			want:   []string{"git", "htop", "jq", "wget"},
		},
		{
			name:   "empty",
			output: "",
			want:   []string{},
		},
		{
			name:   "duplicates collapse",
			output: "git\ngit\n",
			want:   []string{"git"},
		},
		{
			name:   "unsorted input comes back sorted",
			output: "zsh\nbat\nripgrep\n",
			want:   []string{"bat", "ripgrep", "zsh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseNames(tt.output)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseNames() = %v, want %v", got, tt.want)
			}
		})
	}
}
