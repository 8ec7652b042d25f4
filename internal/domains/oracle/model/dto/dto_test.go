package dto_test

import (
	"testing"
	"zentravel/internal/domains/oracle/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []dto.Segment
	}{
		{
			name: "plain text",
			text: "向星辰詢問吧",
			want: []dto.Segment{{Text: "向星辰詢問吧"}},
		},
		{
			name: "bold in the middle",
			text: "前往**維也納**的列車",
			want: []dto.Segment{
				{Text: "前往"},
				{Text: "維也納", Bold: true},
				{Text: "的列車"},
			},
		},
		{
			name: "adjacent bold runs",
			text: "**天文鐘****查理大橋**",
			want: []dto.Segment{
				{Text: "天文鐘", Bold: true},
				{Text: "查理大橋", Bold: true},
			},
		},
		{
			name: "line breaks stay literal",
			text: "第一段\n\n**重點**",
			want: []dto.Segment{
				{Text: "第一段\n\n"},
				{Text: "重點", Bold: true},
			},
		},
		{
			name: "unclosed marker is literal",
			text: "**未完成",
			want: []dto.Segment{{Text: "**未完成"}},
		},
		{
			name: "empty text",
			text: "",
			want: []dto.Segment{{Text: ""}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, dto.Segments(test.text))
		})
	}
}
