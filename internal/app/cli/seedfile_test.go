package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSeedFile_Testdata(t *testing.T) {
	f, err := os.Open("testdata/seeds.toml")
	require.NoError(t, err)
	defer f.Close()

	sf, err := DecodeSeedFile(f)
	require.NoError(t, err)

	require.Len(t, sf.Users, 2)
	assert.Equal(t, "colt", sf.Users[0].Username)
	require.Len(t, sf.Campgrounds, 3)
	assert.Equal(t, "Salmon Creek", sf.Campgrounds[0].Name)
	require.Len(t, sf.Campgrounds[0].Comments, 2)
	assert.Equal(t, "ranger", sf.Campgrounds[0].Comments[0].Author)
	assert.Empty(t, sf.Campgrounds[1].Comments)
}

func TestDecodeSeedFile_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "syntax",
			doc:  `[[users]`,
			want: "parse seed file",
		},
		{
			name: "unknown key",
			doc:  "[[users]]\nusername = \"a\"\npassword = \"b\"\nemail = \"a@b\"\n",
			want: "unknown keys",
		},
		{
			name: "missing password",
			doc:  "[[users]]\nusername = \"a\"\n",
			want: "password is required",
		},
		{
			name: "duplicate user",
			doc:  "[[users]]\nusername = \"a\"\npassword = \"b\"\n[[users]]\nusername = \"a\"\npassword = \"c\"\n",
			want: "duplicate username",
		},
		{
			name: "unknown author",
			doc:  "[[users]]\nusername = \"a\"\npassword = \"b\"\n[[campgrounds]]\nname = \"X\"\nimage = \"https://x\"\nauthor = \"zed\"\n",
			want: `author "zed" is not a seeded user`,
		},
		{
			name: "missing image",
			doc:  "[[users]]\nusername = \"a\"\npassword = \"b\"\n[[campgrounds]]\nname = \"X\"\nauthor = \"a\"\n",
			want: "image is required",
		},
		{
			name: "empty comment",
			doc:  "[[users]]\nusername = \"a\"\npassword = \"b\"\n[[campgrounds]]\nname = \"X\"\nimage = \"https://x\"\nauthor = \"a\"\n[[campgrounds.comments]]\nauthor = \"a\"\ntext = \" \"\n",
			want: "text is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSeedFile(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
