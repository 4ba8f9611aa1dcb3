package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yerzhan-a/charter-market/internal/model"
)

type OrderStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
}

type ContractStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Contract, error)
	GetDocument(ctx context.Context, contractID int64) (*model.ContractDocument, error)
}

type OrderLedgerGenerator interface {
	Generate(owner model.Principal, orders []model.Order) ([]byte, error)
}

type ContractRenderer interface {
	Render(doc model.ContractDocument) ([]byte, error)
}

// CharterService serves the read side of a user's charter activity: order
// and contract listings plus their exportable renditions.
type CharterService struct {
	orders    OrderStore
	contracts ContractStore
	ledger    OrderLedgerGenerator
	renderer  ContractRenderer
}

func NewCharterService(orders OrderStore, contracts ContractStore, ledger OrderLedgerGenerator, renderer ContractRenderer) *CharterService {
	return &CharterService{orders: orders, contracts: contracts, ledger: ledger, renderer: renderer}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *CharterService) Orders(ctx context.Context, principal model.Principal) ([]model.Order, error) {
	return s.orders.ListByUser(ctx, principal.UserID)
}

func (s *CharterService) ExportOrders(ctx context.Context, principal model.Principal) (*ExportResult, error) {
	orders, err := s.orders.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	content, err := s.ledger.Generate(principal, orders)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("orders-%d-%s.xlsx", principal.UserID, time.Now().Format("20060102"))
	return &ExportResult{FileName: fileName, Content: content}, nil
}

func (s *CharterService) Contracts(ctx context.Context, principal model.Principal) ([]model.Contract, error) {
	return s.contracts.ListByUser(ctx, principal.UserID)
}

// ContractDocument renders the printable agreement. Only the two parties may
// download it.
func (s *CharterService) ContractDocument(ctx context.Context, principal model.Principal, contractID int64) (*ExportResult, error) {
	doc, err := s.contracts.GetDocument(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if doc.Contract.ChartererID != principal.UserID && doc.Contract.CarrierID != principal.UserID {
		return nil, ErrPermissionDenied
	}

	content, err := s.renderer.Render(*doc)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("contract-%d.pdf", doc.Contract.ID)
	return &ExportResult{FileName: fileName, Content: content}, nil
}
