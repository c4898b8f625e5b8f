package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"memopad/internal/service"
)

type MemoHandler struct {
	memos *service.MemoService
}

func NewMemoHandler(memos *service.MemoService) *MemoHandler {
	return &MemoHandler{memos: memos}
}

func (h *MemoHandler) List(c *gin.Context) {
	memos, err := h.memos.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	render(c, http.StatusOK, "index", gin.H{"title": "My memos", "memos": memos})
}

// ListAlias keeps /memo working for old bookmarks.
func (h *MemoHandler) ListAlias(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *MemoHandler) NewPage(c *gin.Context) {
	render(c, http.StatusOK, "memo_form", gin.H{"title": "New memo"})
}

func (h *MemoHandler) Create(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	content := strings.TrimSpace(c.PostForm("content"))
	if title == "" {
		setFlash(c, "Title is required.")
		c.Redirect(http.StatusSeeOther, "/memo/new")
		return
	}
	if _, err := h.memos.Create(c.Request.Context(), currentUserID(c), service.MemoInput{
		Title:   title,
		Content: content,
	}); err != nil {
		handleError(c, err)
		return
	}
	setFlash(c, "Memo saved.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *MemoHandler) EditPage(c *gin.Context) {
	memoID, err := paramID(c, "id")
	if err != nil {
		handleError(c, err)
		return
	}
	memo, err := h.memos.Get(c.Request.Context(), currentUserID(c), memoID)
	if err != nil {
		handleError(c, err)
		return
	}
	render(c, http.StatusOK, "memo_form", gin.H{"title": "Edit memo", "memo": memo})
}

func (h *MemoHandler) Update(c *gin.Context) {
	memoID, err := paramID(c, "id")
	if err != nil {
		handleError(c, err)
		return
	}
	input := service.MemoInput{
		Title:   strings.TrimSpace(c.PostForm("title")),
		Content: strings.TrimSpace(c.PostForm("content")),
	}
	if err := h.memos.Update(c.Request.Context(), currentUserID(c), memoID, input); err != nil {
		handleError(c, err)
		return
	}
	setFlash(c, "Memo updated.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *MemoHandler) Delete(c *gin.Context) {
	memoID, err := paramID(c, "id")
	if err != nil {
		handleError(c, err)
		return
	}
	if err := h.memos.Delete(c.Request.Context(), currentUserID(c), memoID); err != nil {
		handleError(c, err)
		return
	}
	setFlash(c, "Memo deleted.")
	c.Redirect(http.StatusSeeOther, "/")
}
