package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/services"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{postService: postService}
}

// ListPosts godoc
// @Summary List the posts of an event in route order
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/posts [get]
func (p *PostController) ListPosts(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	posts, err := p.postService.List(c.Request.Context(), org, eventID)
	if err != nil {
		utils.HandleServiceError(c, "Posten ophalen mislukt", err)
		return
	}
	utils.RespondSuccess(c, posts, "")
}

// CreatePost godoc
// @Summary Add a post to an event
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param request body request_models.PostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Router /events/{eventId}/posts [post]
func (p *PostController) CreatePost(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.Create(c.Request.Context(), org, eventID, req)
	if err != nil {
		utils.HandleServiceError(c, "Post toevoegen mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusCreated, post,
		notify.Normal("Post toegevoegd", post.Name+" is toegevoegd"))
}

// UpdatePost godoc
// @Summary Update a post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param postId path string true "Post ID"
// @Param request body request_models.PostRequest true "Post payload"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/posts/{postId} [put]
func (p *PostController) UpdatePost(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	postID, ok := uuidParam(c, "postId")
	if !ok {
		return
	}

	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.Update(c.Request.Context(), org, eventID, postID, req)
	if err != nil {
		utils.HandleServiceError(c, "Post bijwerken mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, post,
		notify.Normal("Post bijgewerkt", "De wijzigingen zijn opgeslagen"))
}

// DeletePost godoc
// @Summary Delete a post with its assignments and checkpoints
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param postId path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/posts/{postId} [delete]
func (p *PostController) DeletePost(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	postID, ok := uuidParam(c, "postId")
	if !ok {
		return
	}

	if err := p.postService.Delete(c.Request.Context(), org, eventID, postID); err != nil {
		utils.HandleServiceError(c, "Post verwijderen mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, nil,
		notify.Normal("Post verwijderd", "De post is verwijderd"))
}
