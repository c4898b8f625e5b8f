package handler_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"memopad/internal/model"
)

func createMemo(t *testing.T, router http.Handler, token, title, content string) {
	t.Helper()
	resp := postForm(router, "/memo/new", url.Values{
		"title":   {title},
		"content": {content},
	}, token)
	require.Equal(t, http.StatusSeeOther, resp.Code)
	require.Equal(t, "/", resp.Header().Get("Location"))
}

func TestMemoCreateAndList(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "alice", "pw123")
	token := loginUser(t, router, "alice", "pw123")

	createMemo(t, router, token, "Shopping", "milk\neggs")

	resp := getPage(router, "/", token)
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	require.Contains(t, body, "Shopping")
	require.Contains(t, body, "milk<br>\neggs")
}

func TestMemoContentIsEscaped(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "alice", "pw123")
	token := loginUser(t, router, "alice", "pw123")

	createMemo(t, router, token, "xss", "<script>alert(1)</script>\nsafe")

	body := getPage(router, "/", token).Body.String()
	require.NotContains(t, body, "<script>alert(1)</script>")
	require.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;<br>\nsafe")
}

func TestMemoCreateEmptyTitle(t *testing.T) {
	router, db, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "alice", "pw123")
	token := loginUser(t, router, "alice", "pw123")

	resp := postForm(router, "/memo/new", url.Values{
		"title":   {"   "},
		"content": {"whatever"},
	}, token)
	require.Equal(t, http.StatusSeeOther, resp.Code)
	require.Equal(t, "/memo/new", resp.Header().Get("Location"))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM memos"))
	require.Zero(t, count)
}

func TestMemoListOrdering(t *testing.T) {
	router, db, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "alice", "pw123")
	token := loginUser(t, router, "alice", "pw123")

	createMemo(t, router, token, "first", "")
	createMemo(t, router, token, "second", "")
	createMemo(t, router, token, "third", "")

	// spread the creation times apart to exercise the ctime ordering
	require.NoError(t, exec(db, "UPDATE memos SET ctime = ctime - 20 WHERE title = 'first'"))
	require.NoError(t, exec(db, "UPDATE memos SET ctime = ctime - 10 WHERE title = 'second'"))

	body := getPage(router, "/", token).Body.String()
	posThird := strings.Index(body, "third")
	posSecond := strings.Index(body, "second")
	posFirst := strings.Index(body, "first")
	require.True(t, posThird >= 0 && posSecond >= 0 && posFirst >= 0)
	require.Less(t, posThird, posSecond)
	require.Less(t, posSecond, posFirst)
}

func TestMemoEdit(t *testing.T) {
	router, db, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "alice", "pw123")
	token := loginUser(t, router, "alice", "pw123")
	createMemo(t, router, token, "draft", "v1")

	var memo model.Memo
	require.NoError(t, db.Get(&memo, "SELECT id, user_id, title, content, ctime FROM memos WHERE title = 'draft'"))

	page := getPage(router, fmt.Sprintf("/memo/%d/edit", memo.ID), token)
	require.Equal(t, http.StatusOK, page.Code)
	require.Contains(t, page.Body.String(), "draft")

	resp := postForm(router, fmt.Sprintf("/memo/%d/edit", memo.ID), url.Values{
		"title":   {"final"},
		"content": {"v2"},
	}, token)
	require.Equal(t, http.StatusSeeOther, resp.Code)
	require.Equal(t, "/", resp.Header().Get("Location"))

	var updated model.Memo
	require.NoError(t, db.Get(&updated, "SELECT id, user_id, title, content, ctime FROM memos WHERE id = ?", memo.ID))
	require.Equal(t, "final", updated.Title)
	require.Equal(t, "v2", updated.Content)
	require.Equal(t, memo.Ctime, updated.Ctime)
}

func TestMemoOwnership(t *testing.T) {
	router, db, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "alice", "pw123")
	aliceToken := loginUser(t, router, "alice", "pw123")
	createMemo(t, router, aliceToken, "private", "alice only")

	registerUser(t, router, "bob", "pw456")
	bobToken := loginUser(t, router, "bob", "pw456")

	var memo model.Memo
	require.NoError(t, db.Get(&memo, "SELECT id, user_id, title, content, ctime FROM memos WHERE title = 'private'"))

	editPage := getPage(router, fmt.Sprintf("/memo/%d/edit", memo.ID), bobToken)
	require.Equal(t, http.StatusSeeOther, editPage.Code)
	require.Equal(t, "/", editPage.Header().Get("Location"))

	editResp := postForm(router, fmt.Sprintf("/memo/%d/edit", memo.ID), url.Values{
		"title":   {"stolen"},
		"content": {"bob was here"},
	}, bobToken)
	require.Equal(t, http.StatusSeeOther, editResp.Code)
	require.Equal(t, "/", editResp.Header().Get("Location"))

	deleteResp := postForm(router, fmt.Sprintf("/memo/%d/delete", memo.ID), nil, bobToken)
	require.Equal(t, http.StatusSeeOther, deleteResp.Code)
	require.Equal(t, "/", deleteResp.Header().Get("Location"))

	var after model.Memo
	require.NoError(t, db.Get(&after, "SELECT id, user_id, title, content, ctime FROM memos WHERE id = ?", memo.ID))
	require.Equal(t, memo, after)

	// bob's own listing stays empty
	require.NotContains(t, getPage(router, "/", bobToken).Body.String(), "private")
}

func TestMemoDelete(t *testing.T) {
	router, db, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "alice", "pw123")
	token := loginUser(t, router, "alice", "pw123")
	createMemo(t, router, token, "temp", "bye")

	var memo model.Memo
	require.NoError(t, db.Get(&memo, "SELECT id, user_id, title, content, ctime FROM memos WHERE title = 'temp'"))

	resp := postForm(router, fmt.Sprintf("/memo/%d/delete", memo.ID), nil, token)
	require.Equal(t, http.StatusSeeOther, resp.Code)
	require.Equal(t, "/", resp.Header().Get("Location"))

	editAfter := postForm(router, fmt.Sprintf("/memo/%d/edit", memo.ID), url.Values{
		"title": {"zombie"},
	}, token)
	require.Equal(t, http.StatusNotFound, editAfter.Code)

	deleteAfter := postForm(router, fmt.Sprintf("/memo/%d/delete", memo.ID), nil, token)
	require.Equal(t, http.StatusNotFound, deleteAfter.Code)
}

func TestMemoNotFound(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "alice", "pw123")
	token := loginUser(t, router, "alice", "pw123")

	require.Equal(t, http.StatusNotFound, getPage(router, "/memo/9999/edit", token).Code)
	require.Equal(t, http.StatusNotFound, postForm(router, "/memo/9999/delete", nil, token).Code)
	require.Equal(t, http.StatusNotFound, getPage(router, "/memo/bogus/edit", token).Code)
}

func TestMemoAliasRedirect(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "alice", "pw123")
	token := loginUser(t, router, "alice", "pw123")

	resp := getPage(router, "/memo", token)
	require.Equal(t, http.StatusSeeOther, resp.Code)
	require.Equal(t, "/", resp.Header().Get("Location"))
}
