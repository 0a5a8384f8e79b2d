package integration

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollboard/api/internal/core/domain"
)

// TestPollFlow walks the basic lifecycle: register, create a poll, add
// choices, vote, and read the vote back.
func TestPollFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	alice := app.registerUser(t, "alice")
	token := app.login(t, "alice")

	resp := app.do(t, http.MethodPost, "/api/v1/polls", token, map[string]any{
		"title":        "Lunch",
		"poll_type":    "text",
		"choices_open": true,
		"voting_open":  true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	poll := decode[*domain.Poll](t, resp)
	assert.NotEqual(t, uuid.Nil, poll.ID)
	assert.Equal(t, alice.ID, poll.CreatedBy)

	resp = app.do(t, http.MethodPost, "/api/v1/choices", token, map[string]any{
		"poll_id": poll.ID,
		"text":    "Pizza",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	pizza := decode[*domain.Choice](t, resp)

	resp = app.do(t, http.MethodPost, "/api/v1/choices", token, map[string]any{
		"poll_id": poll.ID,
		"text":    "Sushi",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, http.MethodPost, "/api/v1/votes", token, map[string]any{
		"choice_id": pizza.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	vote := decode[*domain.Vote](t, resp)
	assert.Equal(t, alice.ID, vote.UserID)
	assert.Equal(t, pizza.ID, vote.ChoiceID)

	resp = app.do(t, http.MethodGet, "/api/v1/votes/"+vote.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decode[*domain.Vote](t, resp)
	assert.Equal(t, vote.ID, fetched.ID)
}

func TestPollReadsArePublic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	app.registerUser(t, "alice")
	token := app.login(t, "alice")

	resp := app.do(t, http.MethodPost, "/api/v1/polls", token, map[string]any{
		"title":     "Lunch",
		"poll_type": "text",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	poll := decode[*domain.Poll](t, resp)

	// Listing and fetching polls needs no credentials.
	resp = app.do(t, http.MethodGet, "/api/v1/polls", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	polls := decode[[]*domain.Poll](t, resp)
	assert.Len(t, polls, 1)

	resp = app.do(t, http.MethodGet, "/api/v1/polls/"+poll.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Creating one does.
	resp = app.do(t, http.MethodPost, "/api/v1/polls", "", map[string]any{
		"title":     "Dinner",
		"poll_type": "text",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPollUpdateOwnerOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	app.registerUser(t, "alice")
	app.registerUser(t, "bob")
	aliceToken := app.login(t, "alice")
	bobToken := app.login(t, "bob")

	resp := app.do(t, http.MethodPost, "/api/v1/polls", aliceToken, map[string]any{
		"title":     "Lunch",
		"poll_type": "text",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	poll := decode[*domain.Poll](t, resp)

	resp = app.do(t, http.MethodPut, "/api/v1/polls/"+poll.ID.String(), bobToken, map[string]any{
		"title":     "Hijacked",
		"poll_type": "text",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = app.do(t, http.MethodDelete, "/api/v1/polls/"+poll.ID.String(), bobToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = app.do(t, http.MethodPut, "/api/v1/polls/"+poll.ID.String(), aliceToken, map[string]any{
		"title":     "Lunch v2",
		"poll_type": "text",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[*domain.Poll](t, resp)
	assert.Equal(t, "Lunch v2", updated.Title)
}

func TestDeletePollCascadesToChoicesAndVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	app.registerUser(t, "alice")
	token := app.login(t, "alice")

	resp := app.do(t, http.MethodPost, "/api/v1/polls", token, map[string]any{
		"title":        "Lunch",
		"poll_type":    "text",
		"choices_open": true,
		"voting_open":  true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	poll := decode[*domain.Poll](t, resp)

	resp = app.do(t, http.MethodPost, "/api/v1/choices", token, map[string]any{
		"poll_id": poll.ID,
		"text":    "Pizza",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	choice := decode[*domain.Choice](t, resp)

	resp = app.do(t, http.MethodPost, "/api/v1/votes", token, map[string]any{
		"choice_id": choice.ID,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = app.do(t, http.MethodDelete, "/api/v1/polls/"+poll.ID.String(), token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var choices, votes int
	require.NoError(t, app.DB.QueryRow("SELECT count(*) FROM choices WHERE poll_id = $1", poll.ID).Scan(&choices))
	require.NoError(t, app.DB.QueryRow("SELECT count(*) FROM votes WHERE choice_id = $1", choice.ID).Scan(&votes))
	assert.Zero(t, choices)
	assert.Zero(t, votes)
}

func TestChoiceCreationGate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	app.registerUser(t, "alice")
	token := app.login(t, "alice")

	resp := app.do(t, http.MethodPost, "/api/v1/polls", token, map[string]any{
		"title":        "Lunch",
		"poll_type":    "text",
		"choices_open": false,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	poll := decode[*domain.Poll](t, resp)

	resp = app.do(t, http.MethodPost, "/api/v1/choices", token, map[string]any{
		"poll_id": poll.ID,
		"text":    "Pizza",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
