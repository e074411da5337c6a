package mahjong

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

type Hand34 [34]uint8

// WaitKind 和了牌在所属组件中的位置
type WaitKind int

const (
	WaitRyanmen WaitKind = iota // 两面
	WaitShanpon                 // 双碰
	WaitKanchan                 // 嵌张
	WaitPenchan                 // 边张
	WaitTanki                   // 单骑
)

func (w WaitKind) String() string {
	switch w {
	case WaitRyanmen:
		return "ryanmen"
	case WaitShanpon:
		return "shanpon"
	case WaitKanchan:
		return "kanchan"
	case WaitPenchan:
		return "penchan"
	case WaitTanki:
		return "tanki"
	default:
		return "unknown"
	}
}

// Fu 听牌形的符
func (w WaitKind) Fu() int {
	switch w {
	case WaitKanchan, WaitPenchan, WaitTanki:
		return 2
	default:
		return 0
	}
}

// Decomposition 一种雀头 + 四面子的拆法；Melds 前 Concealed 个由门内牌拆出，其后为副露（含暗杠）
type Decomposition struct {
	Head      Head
	Melds     []Meld
	Concealed int
	Wait      WaitKind
	WinMeld   int // 和了牌所在面子下标，单骑为 -1
}

// Tiles 拆法覆盖的全部牌（牌种层面）
func (d Decomposition) Tiles() []Tile {
	out := make([]Tile, 0, 18)
	out = append(out, d.Head.Tiles()...)
	for _, m := range d.Melds {
		out = append(out, m.Tiles...)
	}
	return out
}

// HandMelds 门内拆出的面子
func (d Decomposition) HandMelds() []Meld {
	return d.Melds[:d.Concealed]
}

func (d Decomposition) String() string {
	var b strings.Builder
	b.WriteString(FormatTiles(d.Head.Tiles()))
	for i, m := range d.Melds {
		b.WriteByte(' ')
		if i == d.WinMeld {
			b.WriteByte('*')
		}
		b.WriteString(m.String())
	}
	b.WriteString(" (" + d.Wait.String() + ")")
	return b.String()
}

// partition 门内牌的一种拆法，尚未确定和了牌位置
type partition struct {
	head   TileType
	groups []Meld
}

func (p partition) key() string {
	var b strings.Builder
	b.WriteString(p.head.String())
	for _, g := range p.groups {
		fmt.Fprintf(&b, "|%d%s", g.Kind, g.First())
	}
	return b.String()
}

// Decompose 枚举一般形的全部拆法；手牌只构成七对子/国士无双时返回空结果
func Decompose(concealed []Tile, win Tile, melds []Meld) ([]Decomposition, error) {
	h, err := completeCounts(concealed, win, melds)
	if err != nil {
		return nil, err
	}
	if !CanComplete(h) {
		if len(melds) == 0 && (IsSevenPairs(h) || IsThirteenOrphans(h)) {
			return nil, nil
		}
		return nil, ErrIncompleteHand
	}
	return decompose(h, win.Type, melds), nil
}

func completeCounts(concealed []Tile, win Tile, melds []Meld) (Hand34, error) {
	if len(concealed)%3 != 1 || len(concealed)+3*len(melds) != 13 {
		return Hand34{}, fmt.Errorf("%w: %d concealed tiles with %d melds", ErrTileCount, len(concealed), len(melds))
	}
	if !win.Type.Valid() {
		return Hand34{}, fmt.Errorf("%w: winning tile %d", ErrTileCount, win.Type)
	}
	var h Hand34
	for _, t := range concealed {
		if !t.Type.Valid() {
			return Hand34{}, fmt.Errorf("%w: bad tile %d", ErrTileCount, t.Type)
		}
		h[t.Type]++
	}
	h[win.Type]++
	for tt, c := range h {
		if c > TileCopies {
			return Hand34{}, fmt.Errorf("%w: %s x%d", ErrTileOverflow, TileType(tt), c)
		}
	}
	return h, nil
}

func decompose(h Hand34, win TileType, melds []Meld) []Decomposition {
	var out []Decomposition
	for _, p := range partitions(h) {
		out = append(out, placeWinningTile(p, win, melds)...)
	}
	return out
}

// partitions 每个对子轮流作雀头，剩余部分从小到大贪心切分，再对三连刻做顺子重切
func partitions(h Hand34) []partition {
	var out []partition
	seen := make(map[string]struct{})
	for i := 0; i < TileKinds; i++ {
		if h[i] < 2 {
			continue
		}
		work := h
		work[i] -= 2
		groups, ok := tileLowestFirst(work)
		if !ok {
			continue
		}
		for _, variant := range reslice(groups) {
			p := partition{head: TileType(i), groups: variant}
			k := p.key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// tileLowestFirst 最小牌优先：够 3 张取刻子，否则向后取顺子，都不行则失败
func tileLowestFirst(h Hand34) ([]Meld, bool) {
	out := make([]Meld, 0, 4)
	for i := 0; i < TileKinds; {
		if h[i] == 0 {
			i++
			continue
		}
		if h[i] >= 3 {
			h[i] -= 3
			out = append(out, newConcealedMeld(MeldTriplet, TileType(i)))
			continue
		}
		t := TileType(i)
		if !t.IsNumbered() || t.Number() > 7 || h[i+1] == 0 || h[i+2] == 0 {
			return nil, false
		}
		h[i]--
		h[i+1]--
		h[i+2]--
		out = append(out, newConcealedMeld(MeldRun, t))
	}
	return out, true
}

// reslice 同花色三连刻可以改切成三组相同顺子，递归展开并保留所有变体
func reslice(groups []Meld) [][]Meld {
	sortMelds(groups)
	out := [][]Meld{groups}
	seen := map[string]struct{}{meldsKey(groups): {}}
	for next := 0; next < len(out); next++ {
		cur := out[next]
		for a, ga := range cur {
			first := ga.First()
			if ga.Kind != MeldTriplet || !first.IsNumbered() || first.Number() > 7 {
				continue
			}
			b := indexOfTriplet(cur, first+1)
			c := indexOfTriplet(cur, first+2)
			if b < 0 || c < 0 {
				continue
			}
			variant := make([]Meld, 0, len(cur))
			for i, g := range cur {
				if i != a && i != b && i != c {
					variant = append(variant, g)
				}
			}
			for k := 0; k < 3; k++ {
				variant = append(variant, newConcealedMeld(MeldRun, first))
			}
			sortMelds(variant)
			k := meldsKey(variant)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, variant)
		}
	}
	return out
}

func indexOfTriplet(groups []Meld, tt TileType) int {
	for i, g := range groups {
		if g.Kind == MeldTriplet && g.First() == tt {
			return i
		}
	}
	return -1
}

func sortMelds(groups []Meld) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].First() != groups[j].First() {
			return groups[i].First() < groups[j].First()
		}
		return groups[i].Kind < groups[j].Kind
	})
}

func meldsKey(groups []Meld) string {
	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%d%s|", g.Kind, g.First())
	}
	return b.String()
}

// placeWinningTile 每个含和了牌的门内组件各产生一个候选
func placeWinningTile(p partition, win TileType, melds []Meld) []Decomposition {
	var out []Decomposition
	seen := make(map[string]struct{})
	emit := func(idx int, wait WaitKind) {
		k := fmt.Sprintf("%d/%d", wait, idx)
		if idx >= 0 {
			k = fmt.Sprintf("%d/%d%s", wait, p.groups[idx].Kind, p.groups[idx].First())
		}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		all := make([]Meld, 0, len(p.groups)+len(melds))
		all = append(all, p.groups...)
		all = append(all, melds...)
		out = append(out, Decomposition{
			Head:      Head{Type: p.head},
			Melds:     all,
			Concealed: len(p.groups),
			Wait:      wait,
			WinMeld:   idx,
		})
	}

	if p.head == win {
		emit(-1, WaitTanki)
	}
	for i, g := range p.groups {
		if !g.Contains(win) {
			continue
		}
		if g.IsTriplet() {
			emit(i, WaitShanpon)
			continue
		}
		first := g.First()
		switch win - first {
		case 1:
			emit(i, WaitKanchan)
		case 0:
			if first.Number() == 7 {
				emit(i, WaitPenchan)
			} else {
				emit(i, WaitRyanmen)
			}
		case 2:
			if first.Number() == 1 {
				emit(i, WaitPenchan)
			} else {
				emit(i, WaitRyanmen)
			}
		}
	}
	return out
}

// IsSevenPairs 七种不同的对子，不允许四张同种
func IsSevenPairs(h Hand34) bool {
	pairs := 0
	for _, c := range h {
		switch c {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}

// IsThirteenOrphans 十三种幺九牌各一张，外加其中一种的第二张
func IsThirteenOrphans(h Hand34) bool {
	total := 0
	for _, c := range h {
		total += int(c)
	}
	if total != 14 {
		return false
	}
	for _, tt := range kokushiTileTypes() {
		if h[tt] == 0 {
			return false
		}
		total -= int(h[tt])
	}
	return total == 0
}

// -------------- 基础工具：转换与 key --------------

func Hand34FromTiles(tiles []Tile) (Hand34, map[TileType][]Tile) {
	var h Hand34
	opts := make(map[TileType][]Tile, 34)
	for _, t := range tiles {
		h[int(t.Type)]++
		opts[t.Type] = append(opts[t.Type], t)
	}
	return h, opts
}

func (h Hand34) keyWithFixedMelds(fixedMelds int) string {
	var b [35]byte
	for i := 0; i < 34; i++ {
		b[i] = byte(h[i])
	}
	b[34] = byte(fixedMelds)
	return string(b[:])
}

// Total 张数
func (h Hand34) Total() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// DecompositionCache 拆牌结果的外部缓存，common/cache.GeneralCache 满足该接口
type DecompositionCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}) bool
}

// localCacheLimit 未配置外部缓存时本地缓存的条目上限，满了整体清空
var localCacheLimit = 1 << 16

const (
	agariKeyPrefix = "agari:"
	waitsKeyPrefix = "waits:"
)

// Searcher 带缓存的拆牌与听牌查询，可被多个协程共享
// 配置外部缓存后拆牌、和牌判定、听牌都写入外部缓存，否则和牌判定与听牌使用有上限的本地缓存
type Searcher struct {
	mu     sync.RWMutex
	local  map[string]interface{}
	shared DecompositionCache // 可为空
}

func NewSearcher() *Searcher {
	return &Searcher{
		local: make(map[string]interface{}, 4096),
	}
}

func (s *Searcher) lookup(key string) (interface{}, bool) {
	if s.shared != nil {
		return s.shared.Get(key)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.local[key]
	return v, ok
}

func (s *Searcher) store(key string, v interface{}) {
	if s.shared != nil {
		s.shared.Set(key, v)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.local) >= localCacheLimit {
		s.local = make(map[string]interface{}, 4096)
	}
	s.local[key] = v
}

// WithCache 使用外部缓存保存拆牌结果
func (s *Searcher) WithCache(c DecompositionCache) *Searcher {
	s.shared = c
	return s
}

// Decompose 同包级 Decompose，结果按门内牌 + 和了牌 + 副露缓存
func (s *Searcher) Decompose(concealed []Tile, win Tile, melds []Meld) ([]Decomposition, error) {
	if s.shared == nil {
		return Decompose(concealed, win, melds)
	}
	h, err := completeCounts(concealed, win, melds)
	if err != nil {
		return nil, err
	}
	key := decomposeKey(h, win.Type, melds)
	if v, ok := s.shared.Get(key); ok {
		if ds, ok := v.([]Decomposition); ok {
			return cloneDecompositions(ds), nil
		}
	}
	ds, err := Decompose(concealed, win, melds)
	if err != nil {
		return nil, err
	}
	s.shared.Set(key, cloneDecompositions(ds))
	return ds, nil
}

func decomposeKey(h Hand34, win TileType, melds []Meld) string {
	var b strings.Builder
	b.WriteString(h.keyWithFixedMelds(len(melds)))
	b.WriteByte(byte(win))
	for _, m := range melds {
		fmt.Fprintf(&b, "|%d%d%t%s", m.Kind, m.Source, m.Added, m.First())
	}
	return b.String()
}

func cloneDecompositions(ds []Decomposition) []Decomposition {
	if ds == nil {
		return nil
	}
	out := make([]Decomposition, len(ds))
	for i, d := range ds {
		d.Melds = append([]Meld(nil), d.Melds...)
		out[i] = d
	}
	return out
}

// Waits 13 张（去掉副露后 3k+1 张）听哪些牌，已持有 4 张的牌不算
func (s *Searcher) Waits(concealed []Tile, melds []Meld) ([]TileType, error) {
	if len(concealed)%3 != 1 || len(concealed)+3*len(melds) != 13 {
		return nil, fmt.Errorf("%w: %d concealed tiles with %d melds", ErrTileCount, len(concealed), len(melds))
	}
	h13, _ := Hand34FromTiles(concealed)
	held := h13
	for _, m := range melds {
		for _, t := range m.Tiles {
			held[t.Type]++
		}
	}
	for tt, c := range held {
		if c > TileCopies {
			return nil, fmt.Errorf("%w: %s x%d", ErrTileOverflow, TileType(tt), c)
		}
	}

	key := waitsKeyPrefix + held.keyWithFixedMelds(len(melds)) + h13.keyWithFixedMelds(len(melds))
	if v, ok := s.lookup(key); ok {
		if cached, ok := v.([]TileType); ok {
			return append([]TileType(nil), cached...), nil
		}
	}

	var waits []TileType
	normal := CanBeReady(h13)
	for t := 0; t < TileKinds; t++ {
		if held[t] >= TileCopies {
			continue
		}
		work := h13
		work[t]++
		if normal && s.IsAgariNormal(work, len(melds)) {
			waits = append(waits, TileType(t))
			continue
		}
		if len(melds) == 0 && (IsSevenPairs(work) || IsThirteenOrphans(work)) {
			waits = append(waits, TileType(t))
		}
	}

	s.store(key, append([]TileType(nil), waits...))
	return waits, nil
}

// IsAgariNormal 一般形是否和牌
func (s *Searcher) IsAgariNormal(h Hand34, fixedMelds int) bool {
	key := agariKeyPrefix + h.keyWithFixedMelds(fixedMelds)
	if v, ok := s.lookup(key); ok {
		if agari, ok := v.(bool); ok {
			return agari
		}
	}

	ok := h.Total()+3*fixedMelds == 14 && CanComplete(h)
	s.store(key, ok)
	return ok
}

// Shanten 一般形、七对子、国士无双中最小的向听数，-1 为和了
func Shanten(h Hand34, fixedMelds int) int {
	best := shantenNormal(h, fixedMelds)
	if fixedMelds == 0 {
		if v := shantenSevenPairs(h); v < best {
			best = v
		}
		if v := shantenOrphans(h); v < best {
			best = v
		}
	}
	return best
}

func shantenOrphans(h Hand34) int {
	unique := 0
	pair := false
	for _, tt := range kokushiTileTypes() {
		if h[tt] > 0 {
			unique++
			if h[tt] >= 2 {
				pair = true
			}
		}
	}
	sh := 13 - unique
	if pair {
		sh--
	}
	return sh
}

func shantenSevenPairs(h Hand34) int {
	pairs := 0
	unique := 0
	for _, c := range h {
		if c > 0 {
			unique++
		}
		if c >= 2 {
			pairs++
		}
	}
	sh := 6 - pairs
	if unique < 7 {
		sh += 7 - unique
	}
	return sh
}

func shantenNormal(h Hand34, fixedMelds int) int {
	best := 8
	work := h
	dfsShanten(&work, fixedMelds, 0, 0, &best)
	return best
}

// dfsShanten m：已成面子数（含副露），p：雀头数，t：搭子数
func dfsShanten(h *Hand34, m int, p int, t int, best *int) {
	if m > 4 {
		return
	}
	t2 := t
	if limit := 4 - m; t2 > limit {
		t2 = limit
	}
	if sh := 8 - 2*m - t2 - p; sh < *best {
		*best = sh
	}

	i := -1
	for k := 0; k < TileKinds; k++ {
		if (*h)[k] > 0 {
			i = k
			break
		}
	}
	if i == -1 {
		return
	}
	tt := TileType(i)

	if (*h)[i] >= 3 {
		(*h)[i] -= 3
		dfsShanten(h, m+1, p, t, best)
		(*h)[i] += 3
	}
	if tt.IsNumbered() && tt.Number() <= 7 && (*h)[i+1] > 0 && (*h)[i+2] > 0 {
		(*h)[i]--
		(*h)[i+1]--
		(*h)[i+2]--
		dfsShanten(h, m+1, p, t, best)
		(*h)[i]++
		(*h)[i+1]++
		(*h)[i+2]++
	}
	if p == 0 && (*h)[i] >= 2 {
		(*h)[i] -= 2
		dfsShanten(h, m, 1, t, best)
		(*h)[i] += 2
	}
	if tt.IsNumbered() && tt.Number() <= 8 && (*h)[i+1] > 0 {
		(*h)[i]--
		(*h)[i+1]--
		dfsShanten(h, m, p, t+1, best)
		(*h)[i]++
		(*h)[i+1]++
	}
	if tt.IsNumbered() && tt.Number() <= 7 && (*h)[i+2] > 0 {
		(*h)[i]--
		(*h)[i+2]--
		dfsShanten(h, m, p, t+1, best)
		(*h)[i]++
		(*h)[i+2]++
	}

	(*h)[i]--
	dfsShanten(h, m, p, t, best)
	(*h)[i]++
}
