package book

import (
	"fmt"
	"testing"

	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/testutil"
	"bookswap_server/pkg/enum/book/user_book_status_enum"
	"bookswap_server/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookAndList(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos)

	for i := 0; i < 25; i++ {
		_, err := svc.CreateBook(&request.CreateBookRequest{
			Title: fmt.Sprintf("Book %02d", i),
		})
		require.NoError(t, err)
	}

	t.Run("默认分页", func(t *testing.T) {
		list, err := svc.GetBookList(&request.GetBookListRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(25), list.Total)
		assert.Len(t, list.Books, 20)
	})

	t.Run("第二页", func(t *testing.T) {
		list, err := svc.GetBookList(&request.GetBookListRequest{Page: 2, PageSize: 20})
		require.NoError(t, err)
		assert.Len(t, list.Books, 5)
	})

	t.Run("语言缺省为 en", func(t *testing.T) {
		created, err := svc.CreateBook(&request.CreateBookRequest{Title: "No Language"})
		require.NoError(t, err)
		assert.Equal(t, "en", created.Language)
	})
}

func TestUserShelf(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")
	catalogBook := testutil.CreateTestBook(t, repos, "Dune")

	t.Run("加入藏书", func(t *testing.T) {
		added, err := svc.AddUserBook(alice.Uuid, &request.AddUserBookRequest{
			BookId: catalogBook.Uuid,
			Status: user_book_status_enum.AVAILABLE,
		})
		require.NoError(t, err)
		assert.Equal(t, "Dune", added.Book.Title)
		assert.Equal(t, "good", added.Condition)
	})

	t.Run("同一书目不能重复加入", func(t *testing.T) {
		_, err := svc.AddUserBook(alice.Uuid, &request.AddUserBookRequest{BookId: catalogBook.Uuid})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeBookExist, errorx.GetCode(err))
	})

	t.Run("他人书架只展示可交换的", func(t *testing.T) {
		hidden := testutil.CreateTestBook(t, repos, "Hidden")
		_, err := svc.AddUserBook(alice.Uuid, &request.AddUserBookRequest{
			BookId: hidden.Uuid,
			Status: user_book_status_enum.OWNED,
		})
		require.NoError(t, err)

		own, err := svc.ListUserBooks(alice.Uuid, alice.Uuid)
		require.NoError(t, err)
		assert.Len(t, own, 2)

		visitor, err := svc.ListUserBooks(bob.Uuid, alice.Uuid)
		require.NoError(t, err)
		require.Len(t, visitor, 1)
		assert.Equal(t, "Dune", visitor[0].Book.Title)
	})

	t.Run("只能改自己的藏书状态", func(t *testing.T) {
		shelf, err := svc.ListUserBooks(alice.Uuid, alice.Uuid)
		require.NoError(t, err)
		require.NotEmpty(t, shelf)

		err = svc.UpdateUserBookStatus(bob.Uuid, &request.UpdateUserBookStatusRequest{
			UserBookId: shelf[0].Uuid,
			Status:     user_book_status_enum.OWNED,
		})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeNotAllowed, errorx.GetCode(err))

		err = svc.UpdateUserBookStatus(alice.Uuid, &request.UpdateUserBookStatusRequest{
			UserBookId: shelf[0].Uuid,
			Status:     user_book_status_enum.OWNED,
		})
		require.NoError(t, err)
	})
}
