// Package counter は外部から直接触れない非公開のカウントを持つカウンタを提供する。
//
// カウントはNewの中で宣言されたローカル変数であり、返されるCounterは
// それを捕捉したクロージャだけを保持する。そのためIncrementとCount以外に
// カウントへ到達する経路は存在しない。
package counter

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrOverflow はカウントがint64の上限に達した状態でインクリメントされたことを表す
var ErrOverflow = errors.New("counter overflow")

// Counter はカウントを操作する2つの関数だけを公開するハンドル
// 必ずNewで生成すること
type Counter struct {
	increment func() int64
	count     func() int64
}

// Option はNewの挙動を変更する
type Option func(*options)

type options struct {
	observer func(int64)
	start    int64
}

// WithObserver はインクリメント直後の値を受け取るコールバックを登録する
// コールバックはロック解放後に呼ばれる
func WithObserver(observer func(int64)) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// New は0から始まる独立したカウンタを生成する
func New(opts ...Option) *Counter {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var (
		mu    sync.Mutex
		count = o.start
	)

	increment := func() int64 {
		mu.Lock()
		if count == math.MaxInt64 {
			mu.Unlock()
			// 上限を超えるインクリメントは呼び出し側の前提条件違反として扱う
			panic(fmt.Errorf("increment past %d: %w", int64(math.MaxInt64), ErrOverflow))
		}
		count++
		v := count
		mu.Unlock()

		if o.observer != nil {
			o.observer(v)
		}
		return v
	}

	get := func() int64 {
		mu.Lock()
		defer mu.Unlock()
		return count
	}

	return &Counter{
		increment: increment,
		count:     get,
	}
}

// Increment はカウントに1を加え、加算後の値を返す
// カウントがmath.MaxInt64の場合はErrOverflowをラップしたerrorでpanicする
func (c *Counter) Increment() int64 {
	return c.increment()
}

// Count は現在のカウントを返す
func (c *Counter) Count() int64 {
	return c.count()
}

// Incrementer は独自のカウンタを捕捉した関数を返す
// 呼び出すたびにカウントが1増え、加算後の値が返る
func Incrementer(opts ...Option) func() int64 {
	return New(opts...).Increment
}
