// Package book 图书目录业务逻辑：公共书目与用户藏书
package book

import (
	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/dto/respond"
	"bookswap_server/internal/model"
	"bookswap_server/pkg/constants"
	"bookswap_server/pkg/errorx"
	"bookswap_server/pkg/util/random"
)

// Service 图书服务
type Service struct {
	repos *repository.Repositories
}

// NewService 创建图书服务
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

// CreateBook 创建公共书目
func (s *Service) CreateBook(req *request.CreateBookRequest) (*respond.BookRespond, error) {
	language := req.Language
	if language == "" {
		language = "en"
	}
	newBook := &model.Book{
		Uuid:        "B" + random.GetNowAndLenRandomString(13),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		AuthorNames: req.AuthorNames,
		Isbn13:      req.Isbn13,
		Publisher:   req.Publisher,
		Language:    language,
		Pages:       req.Pages,
		Description: req.Description,
	}
	if err := s.repos.Book.Create(newBook); err != nil {
		return nil, err
	}
	return bookToRespond(newBook), nil
}

// GetBookList 分页获取书目列表
func (s *Service) GetBookList(req *request.GetBookListRequest) (*respond.BookListRespond, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = constants.DEFAULT_PAGE_SIZE
	}

	books, total, err := s.repos.Book.GetBookList(page, pageSize)
	if err != nil {
		return nil, err
	}
	list := make([]respond.BookRespond, 0, len(books))
	for i := range books {
		list = append(list, *bookToRespond(&books[i]))
	}
	return &respond.BookListRespond{Total: total, Books: list}, nil
}

// AddUserBook 把某条书目加入自己的藏书
// 同一用户对同一书目只能有一条藏书记录
func (s *Service) AddUserBook(actorId string, req *request.AddUserBookRequest) (*respond.UserBookRespond, error) {
	catalogBook, err := s.repos.Book.FindByUuid(req.BookId)
	if err != nil {
		return nil, err
	}

	if _, err := s.repos.UserBook.FindByOwnerAndBook(actorId, req.BookId); err == nil {
		return nil, errorx.New(errorx.CodeBookExist, "该书已在藏书中")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return nil, err
	}

	condition := req.Condition
	if condition == "" {
		condition = "good"
	}
	userBook := &model.UserBook{
		Uuid:         "C" + random.GetNowAndLenRandomString(13),
		OwnerId:      actorId,
		BookId:       req.BookId,
		Status:       req.Status,
		Condition:    condition,
		ExchangeType: req.ExchangeType,
		Notes:        req.Notes,
	}
	if err := s.repos.UserBook.Create(userBook); err != nil {
		return nil, err
	}
	return userBookToRespond(userBook, catalogBook), nil
}

// ListUserBooks 查看某用户的藏书
// 查看他人书架时只展示可交换的部分
func (s *Service) ListUserBooks(viewerId, ownerId string) ([]respond.UserBookRespond, error) {
	userBooks, err := s.repos.UserBook.FindByOwner(ownerId)
	if err != nil {
		return nil, err
	}

	list := make([]respond.UserBookRespond, 0, len(userBooks))
	for i := range userBooks {
		ub := &userBooks[i]
		if viewerId != ownerId && !ub.AvailableForExchange() {
			continue
		}
		catalogBook, err := s.repos.Book.FindByUuid(ub.BookId)
		if err != nil {
			if errorx.GetCode(err) == errorx.CodeNotFound {
				continue
			}
			return nil, err
		}
		list = append(list, *userBookToRespond(ub, catalogBook))
	}
	return list, nil
}

// UpdateUserBookStatus 更新自己藏书的状态
func (s *Service) UpdateUserBookStatus(actorId string, req *request.UpdateUserBookStatusRequest) error {
	userBook, err := s.repos.UserBook.FindByUuid(req.UserBookId)
	if err != nil {
		return err
	}
	if userBook.OwnerId != actorId {
		return errorx.New(errorx.CodeNotAllowed, "只能变更自己的藏书")
	}
	return s.repos.UserBook.UpdateStatus(req.UserBookId, req.Status)
}

func bookToRespond(b *model.Book) *respond.BookRespond {
	return &respond.BookRespond{
		Uuid:        b.Uuid,
		Title:       b.Title,
		Subtitle:    b.Subtitle,
		AuthorNames: b.AuthorNames,
		Isbn13:      b.Isbn13,
		Publisher:   b.Publisher,
		Language:    b.Language,
		Pages:       b.Pages,
		Description: b.Description,
	}
}

func userBookToRespond(ub *model.UserBook, b *model.Book) *respond.UserBookRespond {
	return &respond.UserBookRespond{
		Uuid:         ub.Uuid,
		OwnerId:      ub.OwnerId,
		Book:         *bookToRespond(b),
		Status:       ub.Status,
		Condition:    ub.Condition,
		ExchangeType: ub.ExchangeType,
		Notes:        ub.Notes,
	}
}
