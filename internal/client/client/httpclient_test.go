package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendmark/attendmark/internal/client/models"
	"github.com/attendmark/attendmark/internal/client/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *session.TokenStore, *recordingLogger) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := newTestStore(t)
	log := &recordingLogger{}
	c := NewHTTPClient(srv.URL, store, []string{"public"}, 5*time.Second, log)
	return c, store, log
}

// deadClient points at a server that is already gone, so every request
// fails at the transport level.
func deadClient(t *testing.T) (*HTTPClient, *recordingLogger) {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	store := newTestStore(t)
	log := &recordingLogger{}
	return NewHTTPClient(url, store, []string{"public"}, 2*time.Second, log), log
}

// ---- Login ----

func TestLogin_ReturnsTokenAndPersistsIt(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/public/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "a@b.com", req.Email)
		require.Equal(t, "x", req.Password)

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "T1"})
	}))

	ctx := context.Background()
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch, err := store.Watch(watchCtx)
	require.NoError(t, err)
	<-ch // initial emission (absent)

	resp, err := c.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "T1", resp.Token)

	tok, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", tok.Value)

	select {
	case emitted := <-ch:
		assert.Equal(t, "T1", emitted.Value)
	case <-time.After(2 * time.Second):
		t.Fatal("active subscriber never observed the new token")
	}
}

func TestLogin_BadCredentialsPropagate(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "bad"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	tok, err := store.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, tok.Present)
}

func TestLogin_TransportFailurePropagates(t *testing.T) {
	c, _ := deadClient(t)

	_, err := c.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

// ---- LoginWithGoogle ----

func TestLoginWithGoogle_ReturnsToken(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/public/google", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "google-id-token", body["idToken"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "G1"})
	}))

	tok, err := c.LoginWithGoogle(context.Background(), "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "G1", tok)
}

// ---- SignUp ----

func TestSignUp_TrueIff200(t *testing.T) {
	for _, tc := range []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusBadRequest, false},
		{http.StatusConflict, false},
		{http.StatusInternalServerError, false},
	} {
		c, _, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/public/create-user", r.URL.Path)
			w.WriteHeader(tc.status)
		}))

		got := c.SignUp(context.Background(), models.User{Email: "a@b.com", Password: "x"})
		assert.Equal(t, tc.want, got, "status %d", tc.status)

		wantLogs := 0
		if !tc.want {
			wantLogs = 1
		}
		assert.Equal(t, wantLogs, log.errorCount(), "status %d", tc.status)
	}
}

func TestSignUp_TransportFailureYieldsFalse(t *testing.T) {
	c, log := deadClient(t)
	assert.False(t, c.SignUp(context.Background(), models.User{Email: "a@b.com", Password: "x"}))
	assert.Equal(t, 1, log.errorCount())
}

// ---- GetEvents ----

func TestGetEvents_NoToken_ServerRejects(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode([]models.Event{})
	}))

	_, err := c.GetEvents(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetEvents_DecodesOrderedList(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/all", r.URL.Path)
		require.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Event{
			{ID: "e1", Name: "first"},
			{ID: "e2", Name: "second"},
		})
	}))
	require.NoError(t, store.Save(context.Background(), "T1"))

	events, err := c.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, "e2", events[1].ID)
}

func TestGetEvents_MalformedBodyIsDecodeError(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "{not json")
	}))

	_, err := c.GetEvents(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

// ---- AddEventToUser ----

func TestAddEventToUser(t *testing.T) {
	var gotEvent models.Event
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/add-event", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotEvent))
	}))

	ok, err := c.AddEventToUser(context.Background(), models.Event{
		Name:      "GoConf",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-02",
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "GoConf", gotEvent.Name)
	assert.Empty(t, gotEvent.ID)
}

func TestAddEventToUser_TransportFailurePropagates(t *testing.T) {
	c, _ := deadClient(t)

	_, err := c.AddEventToUser(context.Background(), models.Event{Name: "X"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

// ---- UploadParticipants ----

func TestUploadParticipants_SendsMultipartFile(t *testing.T) {
	payload := []byte("excel-bytes")

	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/event/upload-participants/ev1", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "list.xlsx", header.Filename)
		assert.Equal(t, "application/octet-stream", header.Header.Get("Content-Type"))

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	}))

	assert.True(t, c.UploadParticipants(context.Background(), "ev1", payload, "list.xlsx"))
}

func TestUploadParticipants_ServerErrorYieldsFalseAndOneLogEntry(t *testing.T) {
	c, _, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	got := c.UploadParticipants(context.Background(), "ev1", []byte("bytes"), "list.xlsx")
	assert.False(t, got)
	assert.Equal(t, 1, log.errorCount())
}

func TestUploadParticipants_TransportFailureYieldsFalse(t *testing.T) {
	c, log := deadClient(t)

	got := c.UploadParticipants(context.Background(), "ev1", []byte("bytes"), "list.xlsx")
	assert.False(t, got)
	assert.Equal(t, 1, log.errorCount())
}

// ---- SendQR ----

func TestSendQR_TrueIff200(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/event/send-qr/ev1", r.URL.Path)
	}))

	assert.True(t, c.SendQR(context.Background(), "ev1"))
}

func TestSendQR_FailuresYieldFalse(t *testing.T) {
	c, _, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	assert.False(t, c.SendQR(context.Background(), "ev1"))
	assert.Equal(t, 1, log.errorCount())

	dead, deadLog := deadClient(t)
	assert.False(t, dead.SendQR(context.Background(), "ev1"))
	assert.Equal(t, 1, deadLog.errorCount())
}

// ---- FindEventByID ----

func TestFindEventByID_Success(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/event/get/ev1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Event{
			ID:        "ev1",
			Name:      "GoConf",
			StartDate: "2025-03-01",
			EndDate:   "2025-03-03",
			Attendance: map[string][]string{
				"2025-03-01": {"a@b.com"},
			},
		})
	}))

	event, err := c.FindEventByID(context.Background(), "ev1")
	require.NoError(t, err)
	assert.Equal(t, "GoConf", event.Name)
	assert.Equal(t, []string{"a@b.com"}, event.PresentOn("2025-03-01"))
}

func TestFindEventByID_NotFound(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.FindEventByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ---- MarkAttendance ----

func TestMarkAttendance_ForwardsPayloadVerbatim(t *testing.T) {
	raw := `{"eventId":"ev1","date":"2025-03-01","participantEmail":"a@b.com"}`

	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/event/markAttendance", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, raw, string(body))

		_, _ = io.WriteString(w, "true")
	}))

	ok, err := c.MarkAttendance(context.Background(), raw)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMarkAttendance_AcceptsWrappedResponse(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"message":"marked"}`)
	}))

	ok, err := c.MarkAttendance(context.Background(), `{"x":1}`)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMarkAttendance_FalseResult(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false,"message":"already marked"}`)
	}))

	ok, err := c.MarkAttendance(context.Background(), `{"x":1}`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMarkAttendance_MalformedResponse(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not-json")
	}))

	_, err := c.MarkAttendance(context.Background(), `{"x":1}`)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestMarkAttendance_ServerErrorPropagates(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.MarkAttendance(context.Background(), `{"x":1}`)
	assert.ErrorIs(t, err, ErrServer)
}
