package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/notify"
	"storefront/internal/repository"
)

const (
	// 保存先のキー（localStorageの"user"）
	DefaultSessionKey = "user"
	// 疑似的な通信待ち
	DefaultLoginDelay = 800 * time.Millisecond
)

// toastの文言
const (
	msgLoginSuccess    = "Login successful"
	msgInvalidLogin    = "Invalid email or password"
	msgRegisterSuccess = "Registration successful"
	msgEmailRegistered = "Email already registered"
	msgRegisterFailed  = "Registration failed"
	msgLogoutSuccess   = "Logged out successfully"
)

// セッションの変更を受け取るリスナー（nilはログアウト）
type SessionListener func(user *model.User)

type SessionOptions struct {
	// 保存先のキー。空ならDefaultSessionKey
	StorageKey string

	// login/registerの待ち時間。負なら0
	Delay time.Duration

	// テストで差し替える
	Sleep func(time.Duration)

	Logger *slog.Logger
}

// SessionStore はログイン中のユーザー（またはなし）を持つ。
// 失敗はboolとtoastで返し、エラーにはしない。
type SessionStore struct {
	users    repository.UserRepository
	storage  repository.KeyValueStore
	codec    SessionCodec
	hasher   PasswordHasher
	verifier PasswordVerifier
	notifier notify.Notifier

	key    string
	delay  time.Duration
	sleep  func(time.Duration)
	logger *slog.Logger

	mu        sync.Mutex
	current   *model.User
	loading   int
	listeners map[int]SessionListener
	nextSubID int

	// 件数→ID採番→追加 を直列にする
	registerMu sync.Mutex
}

// DI
func NewSessionStore(
	users repository.UserRepository,
	storage repository.KeyValueStore,
	codec SessionCodec,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	notifier notify.Notifier,
	opts SessionOptions,
) *SessionStore {
	if codec == nil {
		codec = JSONCodec{}
	}
	if notifier == nil {
		notifier = notify.Discard
	}
	if opts.StorageKey == "" {
		opts.StorageKey = DefaultSessionKey
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &SessionStore{
		users:     users,
		storage:   storage,
		codec:     codec,
		hasher:    hasher,
		verifier:  verifier,
		notifier:  notifier,
		key:       opts.StorageKey,
		delay:     opts.Delay,
		sleep:     opts.Sleep,
		logger:    opts.Logger,
		listeners: make(map[int]SessionListener),
	}
}

// Restore は起動時に保存済みのセッションを読み込む。
// 無い・壊れている場合は未ログインのまま（エラーにしない）。
func (s *SessionStore) Restore(ctx context.Context) {
	data, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read session record", "key", s.key, "error", err)
		return
	}

	user, err := s.codec.Decode(data)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to parse session record", "key", s.key, "error", err)
		return
	}

	s.setCurrent(&user)
	s.logger.InfoContext(ctx, "session restored", "user_id", user.ID)
}

// Login はemailとpasswordが一致すればログインする。
// ログイン中に呼んでも上書きする。
func (s *SessionStore) Login(ctx context.Context, email, password string) bool {
	s.beginLoading()
	defer s.endLoading()

	s.sleep(s.delay)

	//emailでユーザー取得
	found, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.ErrorContext(ctx, "user lookup failed", "error", err)
	}

	//パスワード照合
	if err != nil || !s.verifier.Verify(password, found.PasswordHash) {
		notify.Error(ctx, s.notifier, msgInvalidLogin)
		return false
	}

	//passwordは持たない
	user := found.User
	s.startSession(ctx, user)

	notify.Success(ctx, s.notifier, msgLoginSuccess)
	return true
}

// Register は新しいユーザーを追加してログインする。
// emailの重複は大文字小文字も区別する。
func (s *SessionStore) Register(ctx context.Context, name, email, password string) bool {
	ok, _ := s.RegisterUser(ctx, name, email, password)
	return ok
}

// RegisterUser はRegisterと同じ。重複はfalse、保存やハッシュの失敗はerrで返す。
func (s *SessionStore) RegisterUser(ctx context.Context, name, email, password string) (bool, error) {
	s.beginLoading()
	defer s.endLoading()

	s.sleep(s.delay)

	user, ok, err := s.createUser(ctx, name, email, password)
	if err != nil {
		notify.Error(ctx, s.notifier, msgRegisterFailed)
		return false, err
	}
	if !ok {
		notify.Error(ctx, s.notifier, msgEmailRegistered)
		return false, nil
	}

	s.startSession(ctx, user)

	notify.Success(ctx, s.notifier, msgRegisterSuccess)
	return true, nil
}

// Logout はいつでも成功する。
func (s *SessionStore) Logout(ctx context.Context) {
	s.setCurrent(nil)

	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.logger.WarnContext(ctx, "failed to delete session record", "key", s.key, "error", err)
	}

	notify.Info(ctx, s.notifier, msgLogoutSuccess)
}

// ログイン中のユーザーのコピー（未ログインはnil）
func (s *SessionStore) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// login/registerの待ち中か
func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Subscribe はセッションが変わるたびにfnを呼ぶ。戻り値で解除する。
func (s *SessionStore) Subscribe(fn SessionListener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// 重複はok=false、それ以外の失敗はerr
func (s *SessionStore) createUser(ctx context.Context, name, email, password string) (model.User, bool, error) {
	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	// email重複チェック
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return model.User{}, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.ErrorContext(ctx, "user lookup failed", "error", err)
		return model.User{}, false, err
	}

	// 削除が無いので件数+1で重ならない
	n, err := s.users.Count(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "user count failed", "error", err)
		return model.User{}, false, err
	}

	registered, err := NewRegisteredUser(s.hasher, int64(n)+1, name, email, password)
	if err != nil {
		s.logger.ErrorContext(ctx, "password hash failed", "error", err)
		return model.User{}, false, err
	}

	if err := s.users.Create(ctx, registered); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			return model.User{}, false, nil
		}
		s.logger.ErrorContext(ctx, "user create failed", "error", err)
		return model.User{}, false, err
	}

	return registered.User, true, nil
}

// セッションを設定して保存する。保存の失敗はログだけ。
func (s *SessionStore) startSession(ctx context.Context, user model.User) {
	s.setCurrent(&user)

	data, err := s.codec.Encode(user)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode session record", "error", err)
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.logger.WarnContext(ctx, "failed to write session record", "key", s.key, "error", err)
	}
}

func (s *SessionStore) setCurrent(user *model.User) {
	s.mu.Lock()
	s.current = user
	listeners := make([]SessionListener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		if user == nil {
			fn(nil)
			continue
		}
		u := *user
		fn(&u)
	}
}

func (s *SessionStore) beginLoading() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
}

func (s *SessionStore) endLoading() {
	s.mu.Lock()
	s.loading--
	s.mu.Unlock()
}
