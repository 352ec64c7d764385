package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendation(t *testing.T) {
	cases := map[string]Recommendation{
		"Yes":           Yes,
		" yes ":         Yes,
		"NO":            No,
		"in moderation": InModeration,
		"Sometimes":     InModeration,
	}

	for in, expected := range cases {
		got, err := ParseRecommendation(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, got)
	}

	_, err := ParseRecommendation("maybe")
	require.ErrorIs(t, err, ErrInvalidRecommendation)
}

func candidate(text string) string {
	b, _ := json.Marshal(text)
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%s}]}}]}`, b)
}

func TestLookup(t *testing.T) {
	var got generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		fmt.Fprint(w, candidate(`{"foodName":"Grilled chicken","recommendation":"yes",`+
			`"explanation":"Lean protein.","calories":165,"protein":31,"carbs":0,"fats":3.6}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/v1beta/", "gemini-2.0-flash", "k")

	res, err := c.Lookup(context.Background(), " grilled chicken ")
	require.NoError(t, err)

	assert.Equal(t, Result{
		FoodName:       "Grilled chicken",
		Recommendation: Yes,
		Explanation:    "Lean protein.",
		Calories:       165,
		Protein:        31,
		Carbs:          0,
		Fats:           3.6,
	}, res)

	require.Len(t, got.Contents, 1)
	assert.True(t, strings.Contains(got.Contents[0].Parts[0].Text, `"grilled chicken"`))
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMimeType)
	assert.Len(t, got.GenerationConfig.ResponseSchema.Required, 7)
}

func TestLookupEmptyQuery(t *testing.T) {
	c := New("http://127.0.0.1:0", "m", "")

	_, err := c.Lookup(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyQuery)
}

func TestLookupFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		err    error
	}{
		{"status", http.StatusTooManyRequests, "", ErrStatus},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, ErrUnexpectedResponse},
		{"not json", http.StatusOK, `<html>`, ErrUnexpectedResponse},
		{"text not json", http.StatusOK, candidate("I think so"), ErrUnexpectedResponse},
		{
			"bad recommendation",
			http.StatusOK,
			candidate(`{"foodName":"Cake","recommendation":"perhaps"}`),
			ErrInvalidRecommendation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			_, err := New(srv.URL, "m", "").Lookup(context.Background(), "cake")
			require.ErrorIs(t, err, tc.err)
		})
	}
}
