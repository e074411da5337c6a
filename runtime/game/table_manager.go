package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rouhjp/rouh-mahjong-net-sub000/common/log"
	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game/engines/mahjong"
)

// DefaultStartPoints 起始点数
const DefaultStartPoints = 25000

// Table 一桌的点数账本：四家点数、庄家、本场与场上立直棒
// 发牌、行牌不在此处，只接收结算结果
type Table struct {
	ID       string
	Points   [4]int
	Dealer   int
	Streak   int
	Deposits int
	Hands    int // 已结算的局数

	mu sync.RWMutex
}

// Snapshot 账本的只读副本
type Snapshot struct {
	ID       string
	Points   [4]int
	Dealer   int
	Streak   int
	Deposits int
	Hands    int
}

func (t *Table) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Snapshot{ID: t.ID, Points: t.Points, Dealer: t.Dealer, Streak: t.Streak, Deposits: t.Deposits, Hands: t.Hands}
}

// Context 以账本当前状态组装结算上下文
func (t *Table) Context(winner int, method mahjong.WinMethod, discarder int) mahjong.TableContext {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return mahjong.TableContext{
		Winner:    winner,
		Dealer:    t.Dealer,
		Method:    method,
		Discarder: discarder,
		Deposits:  t.Deposits,
		Streak:    t.Streak,
	}
}

// Declare 立直：扣一根立直棒放到场上
func (t *Table) Declare(seat int, unit int) error {
	if seat < 0 || seat > 3 {
		return fmt.Errorf("座位号非法: %d", seat)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Points[seat] -= unit
	t.Deposits++
	return nil
}

// ApplyWin 应用和了结算；庄家和了连庄加本场，否则下庄清本场
// winners 为本局全部和牌者（一炮多响时有多家）
func (t *Table) ApplyWin(winners []int, settlements ...mahjong.Settlement) {
	merged := mahjong.Merge(settlements...)
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.Points {
		t.Points[i] += merged.Deltas[i]
	}
	// 立直棒已随结算交给和牌者
	t.Deposits = 0
	t.Hands++
	for _, w := range winners {
		if w == t.Dealer {
			t.Streak++
			return
		}
	}
	t.Streak = 0
	t.Dealer = (t.Dealer + 1) % 4
}

// ApplyDraw 应用流局结算；庄家听牌连庄，本场总是加一
func (t *Table) ApplyDraw(ready [4]bool, s mahjong.Settlement) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.Points {
		t.Points[i] += s.Deltas[i]
	}
	t.Hands++
	t.Streak++
	if !ready[t.Dealer] {
		t.Dealer = (t.Dealer + 1) % 4
	}
}

// TableManager 管理所有计分桌
type TableManager struct {
	tables map[string]*Table
	mu     sync.RWMutex
}

func NewTableManager() *TableManager {
	return &TableManager{
		tables: make(map[string]*Table),
	}
}

// CreateTable 创建新桌，四家同样的起始点数
func (tm *TableManager) CreateTable(startPoints int) *Table {
	t := &Table{ID: uuid.NewString()}
	for i := range t.Points {
		t.Points[i] = startPoints
	}

	tm.mu.Lock()
	tm.tables[t.ID] = t
	tm.mu.Unlock()

	log.Info("TableManager 创建计分桌 %s，起始点数 %d", t.ID, startPoints)
	return t
}

func (tm *TableManager) GetTable(tableID string) (*Table, bool) {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	t, exists := tm.tables[tableID]
	return t, exists
}

func (tm *TableManager) DeleteTable(tableID string) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if _, exists := tm.tables[tableID]; !exists {
		return fmt.Errorf("计分桌 %s 不存在", tableID)
	}
	delete(tm.tables, tableID)

	log.Info("TableManager 删除计分桌 %s", tableID)
	return nil
}

// Count 当前桌数
func (tm *TableManager) Count() int {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return len(tm.tables)
}
