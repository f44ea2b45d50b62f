package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blogsite/blog-platform/internal/api/middleware"
	"github.com/blogsite/blog-platform/internal/core/domain"
	"github.com/blogsite/blog-platform/internal/core/ports"
)

type BlogHandler struct {
	blogService ports.BlogService
}

func NewBlogHandler(blogService ports.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

type addBlogRequest struct {
	Category string `json:"category" validate:"required,min=20"`
	Article  string `json:"article"  validate:"required"`
}

type updateBlogRequest struct {
	BlogName string `json:"blogName"`
	Category string `json:"category"`
	Article  string `json:"article"`
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}

// caller returns the identity established by the trust filter; route
// middleware guarantees it exists on authenticated routes.
func caller(c echo.Context) (*domain.Identity, error) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}

// CreateCategory adds a curated category. Admin-only: the gateway enforces
// the role at the edge and RequireRoles re-checks it here.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category name"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]any
// @Router       /api/v1.0/blogsite/category/create [post]
func (h *BlogHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.blogService.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"id": category.ID, "name": category.Name})
}

// AllCategories lists every category.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/v1.0/blogsite/categories [get]
func (h *BlogHandler) AllCategories(c echo.Context) error {
	categories, err := h.blogService.AllCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// AddBlog publishes a blog under the caller's identity.
//
// @Summary      Publish a blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        blogname  path      string          true  "Blog name (min 20 chars)"
// @Param        body      body      addBlogRequest  true  "Blog content"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]any
// @Router       /api/v1.0/blogsite/user/blogs/add/{blogname} [post]
func (h *BlogHandler) AddBlog(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req addBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.blogService.AddBlog(c.Request().Context(), identity, c.Param("blogname"), req.Category, req.Article)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"id": blog.ID})
}

// UpdateBlog edits the caller's own blog; empty fields are left unchanged.
//
// @Summary      Update a blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Blog id"
// @Param        body  body      updateBlogRequest  true  "Fields to update"
// @Success      200   {object}  domain.Blog
// @Failure      400   {object}  map[string]any
// @Router       /api/v1.0/blogsite/user/blogs/update/{id} [put]
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	blog, err := h.blogService.UpdateBlog(c.Request().Context(), identity, c.Param("id"), ports.BlogUpdate{
		BlogName: req.BlogName,
		Category: req.Category,
		Article:  req.Article,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// DeleteBlog removes a blog by name; admins may delete anyone's.
//
// @Summary      Delete a blog
// @Tags         blogs
// @Param        blogname  path  string  true  "Blog name"
// @Success      204
// @Failure      400  {object}  map[string]any
// @Router       /api/v1.0/blogsite/user/delete/{blogname} [delete]
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.blogService.DeleteBlog(c.Request().Context(), identity, c.Param("blogname")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MyBlogs lists the caller's own blogs.
//
// @Summary      List the caller's blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  domain.Blog
// @Router       /api/v1.0/blogsite/user/getall [get]
func (h *BlogHandler) MyBlogs(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	blogs, err := h.blogService.BlogsForAuthor(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// AllBlogs lists every published blog. Public through the gateway.
//
// @Summary      List all blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  domain.Blog
// @Router       /api/v1.0/blogsite/blogs/all [get]
func (h *BlogHandler) AllBlogs(c echo.Context) error {
	blogs, err := h.blogService.AllBlogs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// BlogByID fetches a single blog.
//
// @Summary      Get a blog by id
// @Tags         blogs
// @Produce      json
// @Param        id  path      string  true  "Blog id"
// @Success      200  {object}  domain.Blog
// @Failure      400  {object}  map[string]any
// @Router       /api/v1.0/blogsite/blogs/{id} [get]
func (h *BlogHandler) BlogByID(c echo.Context) error {
	blog, err := h.blogService.BlogByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// BlogsByCategory lists the blogs under a category.
//
// @Summary      List blogs by category
// @Tags         blogs
// @Produce      json
// @Param        category  path  string  true  "Category name"
// @Success      200  {array}  domain.Blog
// @Router       /api/v1.0/blogsite/blogs/info/{category} [get]
func (h *BlogHandler) BlogsByCategory(c echo.Context) error {
	blogs, err := h.blogService.BlogsByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// BlogsByCategoryBetween summarizes the blogs under a category within an
// inclusive date range (YYYY-MM-DD).
//
// @Summary      List blogs by category and date range
// @Tags         blogs
// @Produce      json
// @Param        category  path  string  true  "Category name"
// @Param        from      path  string  true  "Start date (YYYY-MM-DD)"
// @Param        to        path  string  true  "End date (YYYY-MM-DD)"
// @Success      200  {object}  ports.BlogSummary
// @Failure      400  {object}  map[string]any
// @Router       /api/v1.0/blogsite/blogs/get/{category}/{from}/{to} [get]
func (h *BlogHandler) BlogsByCategoryBetween(c echo.Context) error {
	from, err := time.Parse(time.DateOnly, c.Param("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from must be a YYYY-MM-DD date")
	}
	to, err := time.Parse(time.DateOnly, c.Param("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "to must be a YYYY-MM-DD date")
	}

	summary, err := h.blogService.BlogsByCategoryBetween(c.Request().Context(), c.Param("category"), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
