package advapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileDecodesMessageObject(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathProfile, r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"status": true,
			"message": map[string]any{
				"_id": "adv-1", "name": "Asha", "phone": "9876543210", "role": "advertiser",
				"wallet": 1200, "createdAt": "2024-01-02T03:04:05Z",
			},
		})
	}))

	user, err := client.Session(Credentials{}).Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "advertiser", user.Role)
	assert.InDelta(t, 1200, user.Wallet.Float(), 0.001)
}

func TestUpdateNameAndRechargeSendJSONBodies(t *testing.T) {
	t.Parallel()

	var gotName string
	var gotAmount float64
	mux := http.NewServeMux()
	mux.HandleFunc("PUT "+PathProfileUpdate, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotName = body["name"]
		writeJSON(t, w, http.StatusOK, map[string]any{"status": true, "message": "updated"})
	})
	mux.HandleFunc("PUT "+PathWalletRecharge, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotAmount = body["amount"]
		writeJSON(t, w, http.StatusOK, map[string]any{"status": true, "message": "recharged"})
	})
	client, _ := newTestClient(t, mux)
	session := client.Session(Credentials{})

	require.NoError(t, session.UpdateName(context.Background(), "  Asha Rao "))
	require.NoError(t, session.RechargeWallet(context.Background(), 499.5))
	assert.Equal(t, "Asha Rao", gotName)
	assert.InDelta(t, 499.5, gotAmount, 0.001)

	assert.Error(t, session.UpdateName(context.Background(), "  "))
	assert.Error(t, session.RechargeWallet(context.Background(), 0))
}

func TestLogOutPosts(t *testing.T) {
	t.Parallel()

	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = r.Method == http.MethodPost && r.URL.Path == PathLogOut
		writeJSON(t, w, http.StatusOK, map[string]any{"status": true})
	}))

	require.NoError(t, client.Session(Credentials{}).LogOut(context.Background()))
	assert.True(t, called)
}
