package handler

import (
	"net/http"
	"strings"

	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/symbols"

	"github.com/gin-gonic/gin"
)

type SymbolSearcher interface {
	Search(query string) []symbols.Match
}

type SymbolHandler struct {
	index SymbolSearcher
}

func NewSymbolHandler(index SymbolSearcher) *SymbolHandler {
	return &SymbolHandler{index: index}
}

func (h *SymbolHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	results := h.index.Search(query)
	if results == nil {
		results = []symbols.Match{}
	}

	c.JSON(http.StatusOK, results)
}
