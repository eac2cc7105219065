package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestStripImageLink(t *testing.T) {
	cases := map[string]string{
		"look https://cdn.example/a.gif here": "look   here",
		"http://x.io/pic.jpeg":                " ",
		"no links here":                       "no links here",
		"https://example.com/page":            "https://example.com/page",
		"see https://x.io/a.JPG":              "see https://x.io/a.JPG",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripImageLink(in), in)
	}
}

func TestBuildEmbedReply(t *testing.T) {
	em := buildEmbedReply("Alice", "https://cdn/a.png", 0xff0000, "gone https://i.example/x.png")
	assert.Equal(t, "Alice is currently away", em.Author.Name)
	assert.Equal(t, "https://cdn/a.png", em.Author.IconURL)
	assert.Equal(t, 0xff0000, em.Color)
	assert.Equal(t, "gone  ", em.Description)
}

func TestBuildTextReply(t *testing.T) {
	calls := 0
	lookup := func(id string) (string, error) {
		calls++
		switch id {
		case "123":
			return "Bob", nil
		case "7":
			return "Eve", nil
		}
		return "", errors.New("unknown")
	}

	assert.Equal(t, "hello @Bob bye", buildTextReply("Alice", "hello <@123> bye", lookup))
	assert.Equal(t, "@Bob and @Eve and @Bob", buildTextReply("Alice", "<@!123> and <@7> and <@123>", lookup))
	assert.Equal(t, "who is <@999>", buildTextReply("Alice", "who is <@999>", lookup))
	assert.Equal(t, "Alice is currently away", buildTextReply("Alice", " ", lookup))
	assert.Equal(t, "Alice is currently away", buildTextReply("Alice", "", lookup))
	// una consulta por id dentro del mismo mensaje
	assert.Equal(t, 4, calls)
}

func TestDisplayName(t *testing.T) {
	u := &discordgo.User{ID: "1", Username: "alice", GlobalName: "Alice A."}
	assert.Equal(t, "Alice A.", displayName(u, nil))
	assert.Equal(t, "Ali", displayName(u, &discordgo.Member{Nick: "Ali", User: u}))
	assert.Equal(t, "Alice A.", displayName(u, &discordgo.Member{User: u}))
}

func TestTopRoleColor(t *testing.T) {
	roles := []*discordgo.Role{
		{ID: "a", Color: 1, Position: 2},
		{ID: "b", Color: 2, Position: 3},
		{ID: "c", Color: 3, Position: 10},
	}
	assert.Equal(t, 2, topRoleColor(roles, []string{"a", "b"}))
	assert.Equal(t, 0, topRoleColor(roles, nil))
}
