package usecases_test

import (
	"reflect"
	"testing"

	"alpha-radar/internal/usecases"
)

func TestExtractURLs(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "full url",
			text: "Read this https://www.reuters.com/technology/apple today",
			want: []string{"https://www.reuters.com/technology/apple"},
		},
		{
			name: "bare domain gets https prefix",
			text: "More at bloomberg.com/news/tsla",
			want: []string{"https://bloomberg.com/news/tsla"},
		},
		{
			name: "mixed, first appearance order",
			text: "See reuters.com first and https://x.com/i/status/5 next",
			want: []string{"https://x.com/i/status/5", "https://reuters.com"},
		},
		{
			name: "duplicates dropped",
			text: "https://a.com/x then again https://a.com/x",
			want: []string{"https://a.com/x"},
		},
		{
			name: "domain inside matched url not extracted twice",
			text: "Link: https://www.cnbc.com/markets",
			want: []string{"https://www.cnbc.com/markets"},
		},
		{
			name: "no urls",
			text: "Just an opinion about $AAPL, nothing linked.",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := usecases.ExtractURLs(tc.text)

			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
