package uow

import "github.com/jackc/pgx/v5"

type IsoLevel string

const (
	ReadCommitted  IsoLevel = IsoLevel(pgx.ReadCommitted)
	RepeatableRead IsoLevel = IsoLevel(pgx.RepeatableRead)
	Serializable   IsoLevel = IsoLevel(pgx.Serializable)
)

// TxOptions параметры транзакции, в которой UnitOfWork выполняет функцию.
type TxOptions struct {
	IsoLevel IsoLevel
	ReadOnly bool
}

var (
	// DefaultTxOptions используется в UnitOfWork.Do. Записи, затрагивающие одни и те же строки,
	// сериализуются блокировками строк (SELECT ... FOR UPDATE) на стороне репозиториев.
	DefaultTxOptions = TxOptions{IsoLevel: ReadCommitted}

	// SnapshotTxOptions читающая транзакция: все запросы внутри видят один снимок данных и не блокируют
	// пишущие транзакции.
	SnapshotTxOptions = TxOptions{IsoLevel: RepeatableRead, ReadOnly: true}
)

func (o TxOptions) pgxOptions() pgx.TxOptions {
	opts := pgx.TxOptions{IsoLevel: pgx.TxIsoLevel(o.IsoLevel)}
	if opts.IsoLevel == "" {
		opts.IsoLevel = pgx.ReadCommitted
	}
	if o.ReadOnly {
		opts.AccessMode = pgx.ReadOnly
	}
	return opts
}
