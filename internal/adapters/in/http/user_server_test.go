package http_test

import (
	"net/http"
	"testing"

	apihttp "registry/internal/adapters/in/http"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLifecycle(t *testing.T) {
	e := newUserAPI(t)
	email, name := gofakeit.Email(), gofakeit.Name()

	assert.JSONEq(t, `[]`, do(e, http.MethodGet, "/users", "").Body.String())

	rec := do(e, http.MethodPost, "/users", `{"email":"`+email+`","name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[apihttp.UserResponse](t, rec)
	assert.Equal(t, email, created.Email)
	assert.Equal(t, name, created.Name)
	_, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	got := decode[apihttp.UserResponse](t, do(e, http.MethodGet, "/users/"+created.ID, ""))
	if diff := cmp.Diff(created, got); diff != "" {
		t.Errorf("user mismatch (-created +got):\n%s", diff)
	}

	all := decode[[]apihttp.UserResponse](t, do(e, http.MethodGet, "/users", ""))
	require.Len(t, all, 1)

	rec = do(e, http.MethodDelete, "/users/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, "/users/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())

	rec = do(e, http.MethodDelete, "/users/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateUser_Invalid(t *testing.T) {
	e := newUserAPI(t)

	for _, body := range []string{
		`{"email":"test@example.com"}`,
		`{"name":"Test"}`,
		`{"email":"","name":""}`,
		`{}`,
		`not json`,
	} {
		rec := do(e, http.MethodPost, "/users", body)

		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":"Email and name are required"}`, rec.Body.String())
	}

	assert.JSONEq(t, `[]`, do(e, http.MethodGet, "/users", "").Body.String())
}

func TestGetUser_NotUUID(t *testing.T) {
	e := newUserAPI(t)

	rec := do(e, http.MethodGet, "/users/42", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestUserRoutes_NonCanonicalID(t *testing.T) {
	e := newUserAPI(t)
	rec := do(e, http.MethodPost, "/users", `{"email":"`+gofakeit.Email()+`","name":"`+gofakeit.Name()+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[apihttp.UserResponse](t, rec)

	for _, id := range nonCanonicalSpellings(created.ID) {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			rec = do(e, method, "/users/"+id, "")
			require.Equal(t, http.StatusNotFound, rec.Code, method+" "+id)
			assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
		}
	}

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/users/"+created.ID, "").Code)
}
