package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rouhjp/rouh-mahjong-net-sub000/common/cache"
	"github.com/rouhjp/rouh-mahjong-net-sub000/common/config"
	"github.com/rouhjp/rouh-mahjong-net-sub000/common/log"
	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game/engines"
	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game/engines/mahjong"
)

/*
	计分服务：
		1.持有计分引擎与拆牌缓存，规则热更新时只替换引擎，缓存保留（拆牌与规则无关）
		2.每次计分分配请求 ID，记录耗时
		3.批量计分用信号量限制并发协程数
*/

// Request 一次计分请求
type Request struct {
	ID        string // 为空时自动生成
	Hand      mahjong.Hand
	Situation mahjong.Situation
	Table     *mahjong.TableContext // 非空时顺带结算
}

// Result 计分结果
type Result struct {
	ID         string
	Score      mahjong.HandScore
	Settlement *mahjong.Settlement
	Err        error
	Elapsed    time.Duration
}

type Evaluator struct {
	mu      sync.RWMutex
	scorer  engines.Scorer
	rules   mahjong.Rules
	cache   *cache.GeneralCache // 可为空
	routine chan struct{}       // 批量计分的协程信号量
	timeout time.Duration

	stats struct {
		evaluated int64
		failed    int64
	}
}

// NewEvaluator 按配置创建计分服务
func NewEvaluator(cfg config.ScorerConfiguration) (*Evaluator, error) {
	e := &Evaluator{
		routine: make(chan struct{}, max(cfg.MaxRunRoutineNum, 1)),
		timeout: time.Duration(cfg.HandleTimeout) * time.Second,
	}
	if cfg.CacheConf.Enabled {
		c, err := cache.NewGeneralCache(cfg.MaxEntries, time.Duration(cfg.TTLSeconds)*time.Second)
		if err != nil {
			return nil, err
		}
		e.cache = c
	}
	if err := e.Reload(cfg.RuleConf.ToRules()); err != nil {
		e.Close()
		return nil, err
	}
	log.Info("计分服务初始化完成, routines=%d, cache=%v", cap(e.routine), e.cache != nil)
	return e, nil
}

// Reload 以新规则替换引擎；已有引擎时复制一份，拆牌与听牌缓存保留
func (e *Evaluator) Reload(rules mahjong.Rules) error {
	var (
		scorer engines.Scorer
		err    error
	)
	if prev := e.current(); prev != nil {
		scorer, err = engines.Rebind(prev, rules)
	} else {
		opts := engines.Options{Rules: rules}
		if e.cache != nil {
			opts.Cache = e.cache
		}
		scorer, err = engines.NewScorer(engines.RIICHI_MAHJONG_4P_ENGINE, opts)
	}
	if err != nil {
		return fmt.Errorf("规则无效: %w", err)
	}
	e.mu.Lock()
	e.scorer = scorer
	e.rules = rules
	e.mu.Unlock()
	log.Info("计分规则已加载: %+v", rules)
	return nil
}

func (e *Evaluator) Rules() mahjong.Rules {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rules
}

func (e *Evaluator) current() engines.Scorer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scorer
}

// Evaluate 计分，给出 Table 时继续结算
func (e *Evaluator) Evaluate(ctx context.Context, req Request) Result {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	res := Result{ID: req.ID}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	scorer := e.current()
	res.Score, res.Err = scorer.Evaluate(req.Hand, req.Situation)
	if res.Err == nil && req.Table != nil && !res.Score.IsZero() {
		var s mahjong.Settlement
		s, res.Err = scorer.Settle(res.Score, *req.Table)
		if res.Err == nil {
			res.Settlement = &s
		}
	}
	res.Elapsed = time.Since(start)

	atomic.AddInt64(&e.stats.evaluated, 1)
	if res.Err != nil {
		atomic.AddInt64(&e.stats.failed, 1)
		log.Warn("计分失败 id=%s hand=%s: %v", res.ID, req.Hand, res.Err)
		return res
	}
	log.Debug("计分完成 id=%s hand=%s score=%s elapsed=%s", res.ID, req.Hand, res.Score, res.Elapsed)
	return res
}

// EvaluateBatch 并发计分，结果与请求一一对应
// 超时或取消后尚未开始的请求返回 ctx 的错误
func (e *Evaluator) EvaluateBatch(ctx context.Context, reqs []Request) []Result {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	results := make([]Result, len(reqs))
	var wg sync.WaitGroup
	for i := range reqs {
		select {
		case e.routine <- struct{}{}:
		case <-ctx.Done():
			for j := i; j < len(reqs); j++ {
				results[j] = Result{ID: reqs[j].ID, Err: ctx.Err()}
			}
			wg.Wait()
			return results
		}
		wg.Add(1)
		go func(i int) {
			defer func() {
				<-e.routine
				wg.Done()
			}()
			results[i] = e.Evaluate(ctx, reqs[i])
		}(i)
	}
	wg.Wait()
	return results
}

// Waits 听牌列表
func (e *Evaluator) Waits(concealed []mahjong.Tile, melds []mahjong.Meld) ([]mahjong.TileType, error) {
	return e.current().Waits(concealed, melds)
}

func (e *Evaluator) SettleMultiRon(discarder int, claims []mahjong.RonClaim) ([]mahjong.Settlement, error) {
	return e.current().SettleMultiRon(discarder, claims)
}

func (e *Evaluator) SettleExhaustiveDraw(ready [4]bool) (mahjong.Settlement, error) {
	return e.current().SettleExhaustiveDraw(ready)
}

// Stats 已处理与失败的请求数，以及缓存命中
func (e *Evaluator) Stats() (evaluated, failed int64, hits cache.Stats) {
	if e.cache != nil {
		hits = e.cache.Stats()
	}
	return atomic.LoadInt64(&e.stats.evaluated), atomic.LoadInt64(&e.stats.failed), hits
}

func (e *Evaluator) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// IsContractError 是否为入参错误（与超时、取消区分）
func IsContractError(err error) bool {
	return errors.Is(err, mahjong.ErrInvalidArgument)
}
