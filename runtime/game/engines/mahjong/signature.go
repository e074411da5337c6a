package mahjong

import (
	"strings"
	"sync"
)

/*
	块签名剪枝：
		把门内计数按花色切成块，同花色相邻两张出现的牌之间至多空一位，字牌各自成块；
		面子不会跨越两个及以上的空位，所以每块可以独立判断。
		块签名为从块首到块尾的计数串，如 1m2m4m4m 为 "1102"。
*/

type signatureTable struct {
	complete map[string]struct{} // 可完全拆成面子（可带一个雀头）的块
	ready    map[string]struct{} // 差一张成为 complete 的块
}

var signatures = sync.OnceValue(buildSignatureTable)

func buildSignatureTable() *signatureTable {
	st := &signatureTable{
		complete: make(map[string]struct{}, 4096),
		ready:    make(map[string]struct{}, 8192),
	}

	// 单花色内 9 种刻子 + 7 种顺子
	type group struct {
		first int
		run   bool
	}
	groups := make([]group, 0, 16)
	for r := 0; r < 9; r++ {
		groups = append(groups, group{first: r})
	}
	for r := 0; r < 7; r++ {
		groups = append(groups, group{first: r, run: true})
	}

	var vec [9]uint8
	var place func(start, left int)
	record := func() {
		for _, b := range splitSuit(vec[:]) {
			st.complete[b] = struct{}{}
		}
	}
	withPairs := func() {
		record()
		for r := 0; r < 9; r++ {
			if vec[r]+2 > TileCopies {
				continue
			}
			vec[r] += 2
			record()
			vec[r] -= 2
		}
	}
	place = func(start, left int) {
		withPairs()
		if left == 0 {
			return
		}
		for i := start; i < len(groups); i++ {
			g := groups[i]
			if g.run {
				if vec[g.first] >= TileCopies || vec[g.first+1] >= TileCopies || vec[g.first+2] >= TileCopies {
					continue
				}
				vec[g.first]++
				vec[g.first+1]++
				vec[g.first+2]++
				place(i, left-1)
				vec[g.first]--
				vec[g.first+1]--
				vec[g.first+2]--
				continue
			}
			if vec[g.first]+3 > TileCopies {
				continue
			}
			vec[g.first] += 3
			place(i, left-1)
			vec[g.first] -= 3
		}
	}
	place(0, 4)
	delete(st.complete, "")

	for sig := range st.complete {
		for i := 0; i < len(sig); i++ {
			if sig[i] == '0' {
				continue
			}
			b := []byte(sig)
			b[i]--
			r := strings.Trim(string(b), "0")
			if r == "" || strings.Contains(r, "00") {
				continue
			}
			st.ready[r] = struct{}{}
		}
	}
	return st
}

// splitSuit 把单花色 9 格计数切成块签名
func splitSuit(counts []uint8) []string {
	var out []string
	var b strings.Builder
	gap := 0
	for _, c := range counts {
		if c == 0 {
			if b.Len() > 0 {
				gap++
			}
			continue
		}
		if gap > 1 {
			out = append(out, b.String())
			b.Reset()
		} else {
			for ; gap > 0; gap-- {
				b.WriteByte('0')
			}
		}
		gap = 0
		b.WriteByte('0' + c)
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// blocks 整手的块签名
func (h Hand34) blocks() []string {
	out := make([]string, 0, 8)
	for s := 0; s < 3; s++ {
		out = append(out, splitSuit(h[s*9:s*9+9])...)
	}
	for i := East; i <= Red; i++ {
		if h[i] > 0 {
			out = append(out, string(rune('0'+h[i])))
		}
	}
	return out
}

func signatureSum(sig string) int {
	n := 0
	for i := 0; i < len(sig); i++ {
		n += int(sig[i] - '0')
	}
	return n
}

// CanComplete 3k+2 张的门内计数能否拆成面子 + 一个雀头
func CanComplete(h Hand34) bool {
	st := signatures()
	paired := 0
	for _, b := range h.blocks() {
		if _, ok := st.complete[b]; !ok {
			return false
		}
		if signatureSum(b)%3 == 2 {
			paired++
		}
	}
	return paired == 1
}

// CanBeReady 3k+1 张的门内计数是否可能一般形听牌；可能误放行，不会误拒绝
func CanBeReady(h Hand34) bool {
	st := signatures()
	blocks := h.blocks()
	readyAt := -1
	paired := 0
	for i, b := range blocks {
		if _, ok := st.complete[b]; ok {
			if signatureSum(b)%3 == 2 {
				paired++
			}
			continue
		}
		if readyAt >= 0 {
			return false
		}
		if _, ok := st.ready[b]; !ok {
			return false
		}
		readyAt = i
	}
	if readyAt < 0 {
		return readyAmongComplete(blocks, paired)
	}
	switch signatureSum(blocks[readyAt]) % 3 {
	case 1:
		return paired == 0
	case 2:
		return paired == 1
	}
	return false
}

// readyAmongComplete 所有块都完整时（如对碰的两个 "2"），听牌块同时出现在两张表里
func readyAmongComplete(blocks []string, paired int) bool {
	st := signatures()
	for _, b := range blocks {
		if _, ok := st.ready[b]; !ok {
			continue
		}
		others := paired
		if signatureSum(b)%3 == 2 {
			others--
		}
		switch signatureSum(b) % 3 {
		case 1:
			if others == 0 {
				return true
			}
		case 2:
			if others == 1 {
				return true
			}
		}
	}
	return false
}
