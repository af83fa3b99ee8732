package slidemenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPanels(t *testing.T) {
	tests := []struct {
		name      string
		container int
		widths    []int
		want      PanelLayout
		wantErr   error
	}{
		{
			name:      "menu first",
			container: 80,
			widths:    []int{24, 80},
			want:      PanelLayout{Menu: 0, Main: 1, SlidableDistance: 24},
		},
		{
			name:      "menu second",
			container: 80,
			widths:    []int{80, 30},
			want:      PanelLayout{Menu: 1, Main: 0, SlidableDistance: 30},
		},
		{
			name:      "minimum width is exclusive",
			container: 80,
			widths:    []int{10, 80},
			wantErr:   ErrNoMenuPanel,
		},
		{
			name:      "container width is exclusive",
			container: 80,
			widths:    []int{80, 90},
			wantErr:   ErrNoMenuPanel,
		},
		{
			name:      "two narrow children",
			container: 80,
			widths:    []int{20, 30},
			wantErr:   ErrAmbiguousMenuPanel,
		},
		{
			name:      "single child",
			container: 80,
			widths:    []int{20},
			wantErr:   ErrChildCount,
		},
		{
			name:      "three children",
			container: 80,
			widths:    []int{20, 80, 80},
			wantErr:   ErrChildCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyPanels(tt.container, DefaultMenuMinWidth, tt.widths...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
