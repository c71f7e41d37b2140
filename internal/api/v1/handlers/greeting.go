package handlers

import (
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"api-playground/internal/api/middleware"
	"api-playground/internal/api/v1/dto"
)

// GreetingHandler serves the path-parameter demos
type GreetingHandler struct{}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler() *GreetingHandler {
	return &GreetingHandler{}
}

// Root handles GET /
//
// @Summary Static greeting
// @Tags greeting
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func (h *GreetingHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello World"})
}

// Hello handles GET /hello/:name
//
// @Summary Greet by name
// @Tags greeting
// @Produce json
// @Param name path string true "Name to greet"
// @Success 200 {object} dto.MessageResponse
// @Router /hello/{name} [get]
func (h *GreetingHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello " + c.Param("name")})
}

// Sum handles GET /sum/:num1/:num2
//
// @Summary Add two integers
// @Tags greeting
// @Produce json
// @Param num1 path int true "First operand"
// @Param num2 path int true "Second operand"
// @Success 200 {object} map[string]int
// @Failure 422 {object} errors.APIError "Non-integer operand"
// @Router /sum/{num1}/{num2} [get]
func (h *GreetingHandler) Sum(c *gin.Context) {
	var path dto.SumPath
	if err := middleware.BindURI(c, &path); err != nil {
		middleware.HandleError(c, err)
		return
	}

	// big.Int keeps sums past the int64 range exact
	sum := new(big.Int).Add(big.NewInt(path.Num1), big.NewInt(path.Num2))
	label := fmt.Sprintf("sum of %d and %d", path.Num1, path.Num2)
	c.JSON(http.StatusOK, gin.H{label: sum})
}

// Model handles GET /model/:model_name
//
// @Summary Describe a model
// @Tags greeting
// @Produce json
// @Param model_name path string true "Model name" Enums(alexnet,resnet,lenet)
// @Success 200 {object} dto.ModelResponse
// @Failure 422 {object} errors.APIError "Unknown model"
// @Router /model/{model_name} [get]
func (h *GreetingHandler) Model(c *gin.Context) {
	var path dto.ModelPath
	if err := middleware.BindURI(c, &path); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ModelResponse{
		ModelName: path.ModelName,
		Message:   path.ModelName.Message(),
	})
}

// File handles GET /files/*file_path
// The path is echoed back, empty included; the filesystem is never touched.
//
// @Summary Echo a file path
// @Tags greeting
// @Produce json
// @Param file_path path string true "Path, may contain slashes"
// @Success 200 {object} map[string]string
// @Router /files/{file_path} [get]
func (h *GreetingHandler) File(c *gin.Context) {
	filePath := strings.TrimPrefix(c.Param("file_path"), "/")
	c.JSON(http.StatusOK, gin.H{"file path": filePath})
}
