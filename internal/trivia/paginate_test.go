package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateLastPartialPage(t *testing.T) {
	page, total := Paginate(corpusOf(23), 3, 10)

	assert.Equal(t, 23, total)
	assert.Len(t, page, 3)
	assert.Equal(t, 21, page[0].ID)
	assert.Equal(t, 23, page[2].ID)
}

func TestPaginateReturnsContiguousRange(t *testing.T) {
	questions := corpusOf(23)

	for pageNum := 1; pageNum <= 3; pageNum++ {
		page, total := Paginate(questions, pageNum, 10)
		assert.Equal(t, 23, total)
		assert.LessOrEqual(t, len(page), 10)
		for i, q := range page {
			assert.Equal(t, questions[(pageNum-1)*10+i].ID, q.ID)
		}
	}
}

func TestPaginateOutOfRangePageIsEmpty(t *testing.T) {
	page, total := Paginate(corpusOf(5), 4, 10)

	assert.Empty(t, page)
	assert.Equal(t, 5, total)
}

func TestPaginateEmptyInput(t *testing.T) {
	page, total := Paginate(nil, 1, 10)

	assert.Empty(t, page)
	assert.Zero(t, total)
}
