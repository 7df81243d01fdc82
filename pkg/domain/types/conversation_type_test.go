package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hermes/pkg/domain/types"
)

func TestClassifyConversation(t *testing.T) {
	tests := []struct {
		name      string
		isIM      bool
		isMPIM    bool
		isPrivate bool
		want      types.ConversationType
	}{
		{name: "no flags is public", want: types.ConversationTypePublicChannel},
		{name: "private flag", isPrivate: true, want: types.ConversationTypePrivateChannel},
		{name: "mpim wins over private", isMPIM: true, isPrivate: true, want: types.ConversationTypeMPIM},
		{name: "im wins over everything", isIM: true, isMPIM: true, isPrivate: true, want: types.ConversationTypeIM},
		{name: "im alone", isIM: true, want: types.ConversationTypeIM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := types.ClassifyConversation(tt.isIM, tt.isMPIM, tt.isPrivate)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestParseConversationType(t *testing.T) {
	for _, ct := range types.AllConversationTypes() {
		got, err := types.ParseConversationType(ct.String())
		gt.NoError(t, err).Required()
		gt.Value(t, got).Equal(ct)
	}

	_, err := types.ParseConversationType("channel")
	gt.Value(t, err).NotNil()
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    types.OutputFormat
		wantErr bool
	}{
		{input: "", want: types.OutputFormatMarkdown},
		{input: "markdown", want: types.OutputFormatMarkdown},
		{input: "json", want: types.OutputFormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := types.ParseOutputFormat(tt.input)
			if tt.wantErr {
				gt.Value(t, err).NotNil()
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}
