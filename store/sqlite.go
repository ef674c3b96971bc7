// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stsysd/tasktrack/db"
	"github.com/stsysd/tasktrack/model"
)

// busyTimeout は書き込みロック待ちの上限 (ミリ秒) です。
const busyTimeout = 5000

// UserStore はユーザーの保存と取得を行うインターフェースです。
type UserStore interface {
	// CreateUser は新しいユーザーを作成し、採番されたIDを設定します。
	CreateUser(ctx context.Context, user *model.User) error
	// GetUser は指定されたIDのユーザーを取得します。
	GetUser(ctx context.Context, id int64) (*model.User, error)
	// GetUserByEmail は指定されたメールアドレスのユーザーを取得します。
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// ListUsers はユーザー一覧を取得します。
	ListUsers(ctx context.Context, activeOnly bool) ([]*model.User, error)
	// ListUserIDsByRole は指定されたロールを持つユーザーのID一覧を取得します。
	ListUserIDsByRole(ctx context.Context, role model.Role) ([]int64, error)
	// UpdateUserRole はユーザーのロールを変更します。
	UpdateUserRole(ctx context.Context, id int64, role model.Role) (*model.User, error)
}

// SessionStore はセッションの保存と取得を行うインターフェースです。
type SessionStore interface {
	// CreateSession はユーザーの既存セッションを破棄して新しいセッションを保存します。
	CreateSession(ctx context.Context, session *model.Session) error
	// GetSession は指定されたトークンのセッションを取得します。
	GetSession(ctx context.Context, token string) (*model.Session, error)
	// DeleteSession は指定されたトークンのセッションを削除します。
	DeleteSession(ctx context.Context, token string) error
	// DeleteExpiredSessions は期限切れのセッションを削除します。
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}

// ProjectStore はプロジェクトとその配下のエンティティを扱うインターフェースです。
type ProjectStore interface {
	CreateProject(ctx context.Context, project *model.Project) error
	// GetProject はモジュールと機能を含めてプロジェクトを取得します。
	GetProject(ctx context.Context, id int64) (*model.Project, error)
	ListProjects(ctx context.Context) ([]*model.Project, error)
	// DeleteProject はプロジェクトを削除します。配下のエンティティはカスケード削除されます。
	DeleteProject(ctx context.Context, id int64) error

	// CreateModule はモジュールと機能を1つのトランザクションで作成します。
	CreateModule(ctx context.Context, module *model.Module) error
	ListModules(ctx context.Context, projectID *int64) ([]*model.Module, error)
	DeleteModule(ctx context.Context, id int64) error

	CreateRequirement(ctx context.Context, requirement *model.Requirement) error
	ListRequirements(ctx context.Context, projectID int64) ([]*model.Requirement, error)
	CreateResource(ctx context.Context, resource *model.Resource) error
	ListResources(ctx context.Context, projectID int64) ([]*model.Resource, error)
}

// TaskStore はタスクの保存と取得を行うインターフェースです。
type TaskStore interface {
	// CreateTask はタスクと担当者の割り当てを1つのトランザクションで作成します。
	CreateTask(ctx context.Context, task *model.Task, assigneeIDs []int64, assignedBy int64) error
	// GetTask は担当者と作業記録を含めてタスクを取得します。
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	ListTasks(ctx context.Context, filter *model.TaskFilter) ([]*model.Task, error)
	// UpdateTask はトランザクション内でタスクを読み込み、mutate を適用して書き戻します。
	// mutate がエラーを返した場合は何も書き込みません。
	UpdateTask(ctx context.Context, id int64, mutate func(*model.Task) error) (*model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// TimeLogStore は作業記録を扱うインターフェースです。
type TimeLogStore interface {
	// CreateTimeLog は作業記録を追加し、同じトランザクション内でタスクの実績時間を再計算します。
	// authorize は対象タスクを受け取り、エラーを返すと何も書き込みません。
	CreateTimeLog(ctx context.Context, log *model.TimeLog, authorize func(*model.Task) error) (int, error)
}

// NotificationStore は通知を扱うインターフェースです。
type NotificationStore interface {
	// CreateNotifications は通知をまとめて1つのトランザクションで保存します。
	CreateNotifications(ctx context.Context, notifications []*model.Notification) error
	ListNotifications(ctx context.Context, userID int64, limit int) ([]*model.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID int64, ids []int64) (int, error)
	MarkAllNotificationsRead(ctx context.Context, userID int64) (int, error)
}

// Store は全てのストアを束ねたインターフェースです。
type Store interface {
	UserStore
	SessionStore
	ProjectStore
	TaskStore
	TimeLogStore
	NotificationStore
	Close() error
}

// SQLiteStore はSQLiteを使用したStoreの実装です。
type SQLiteStore struct {
	conn    *sql.DB
	queries *db.Queries
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore は新しいSQLiteStoreを作成します。
func NewSQLiteStore(dataDir string, migrate func(*sql.DB) error) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// SQLiteデータベースファイルのパス
	dbPath := filepath.Join(dataDir, "tasktrack.db")

	// 書き込みトランザクションは BEGIN IMMEDIATE で開始し、ロック待ちは busy_timeout に任せる
	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on", dbPath, busyTimeout)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// マイグレーションの実行
	if migrate != nil {
		if err := migrate(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return &SQLiteStore{
		conn:    conn,
		queries: db.New(conn),
	}, nil
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// SchemaVersion は適用済みのスキーマバージョンを返します。
func (s *SQLiteStore) SchemaVersion() (int64, error) {
	return db.Version(s.conn)
}

// withTx は fn をトランザクション内で実行します。fn がエラーを返すとロールバックします。
func (s *SQLiteStore) withTx(ctx context.Context, fn func(q *db.Queries) error) error {
	// トランザクションの開始
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// トランザクションをロールバックするための遅延関数
	defer func() {
		if tx != nil {
			tx.Rollback() // 成功した場合は既にnilになっているためエラーは無視
		}
	}()

	if err := fn(s.queries.WithTx(tx)); err != nil {
		return err
	}

	// トランザクションのコミット
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", mapError(err))
	}
	tx = nil // コミットが成功したのでnilにして遅延関数でのロールバックを防ぐ

	return nil
}

// mapError は制約違反を model.ErrConflict に変換します。
func mapError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %s", model.ErrConflict, sqliteErr.Error())
	}
	return err
}

// notFound は sql.ErrNoRows を sentinel に置き換えます。
func notFound(err, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}

// 日時は UTC の RFC3339 文字列として保存する

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %q: %w", s, err)
	}
	return t, nil
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullID(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func idPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
