package slack_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hermes/pkg/domain/model/slack"
)

func TestParseTS(t *testing.T) {
	got, ok := slack.ParseTS("1700000000.123456")
	gt.Bool(t, ok).True()
	gt.Value(t, got).Equal(time.Unix(1700000000, 123456000).UTC())

	_, ok = slack.ParseTS("not-a-ts")
	gt.Bool(t, ok).False()
}

func TestFormatTS(t *testing.T) {
	gt.Value(t, slack.FormatTS("1700000000.000100")).Equal("2023-11-14 22:13:20 UTC")
	gt.Value(t, slack.FormatTS("garbage")).Equal("garbage")
}

func TestDirectoryResolve(t *testing.T) {
	dir := slack.Directory{
		"U1": {ID: "U1", Name: "ann", RealName: "Ann Smith", DisplayName: "Ann"},
		"U2": {ID: "U2", Name: "bob", RealName: "Bob Jones"},
		"U3": {ID: "U3", Name: "carol"},
		"U4": {ID: "U4"},
	}

	tests := []struct {
		id   string
		want string
	}{
		{id: "U1", want: "Ann"},
		{id: "U2", want: "Bob Jones"},
		{id: "U3", want: "carol"},
		{id: "U4", want: "U4"},
		{id: "U9", want: "U9"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			gt.Value(t, dir.Resolve(tt.id)).Equal(tt.want)
		})
	}
}

func TestNilDirectoryResolve(t *testing.T) {
	var dir slack.Directory
	gt.Value(t, dir.Resolve("U1")).Equal("U1")
}
