package usecase

import (
	"context"

	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
)

// CreationWorkflow создаёт товар или аксессуар вместе с изображением:
// проверка бренда и категории -> проверка файла -> запись сущности -> загрузка -> запись изображения.
//
// В обычном режиме каждый шаг фиксируется сразу, поэтому неудачная загрузка оставляет
// сущность без изображения. В атомарном режиме шаги записи выполняются в одной транзакции,
// а уже загруженный объект удаляется в фоне при откате.
type CreationWorkflow struct {
	validator   *ReferenceValidator
	imagesInfra ImagesInfra
	outboxRepo  OutboxRepository
	txManager   TxManager
	atomic      bool
	logger      logger.Logger
}

func NewCreationWorkflow(
	validator *ReferenceValidator,
	imagesInfra ImagesInfra,
	outboxRepo OutboxRepository,
	txManager TxManager,
	atomic bool,
	logger logger.Logger,
) *CreationWorkflow {
	return &CreationWorkflow{
		validator:   validator,
		imagesInfra: imagesInfra,
		outboxRepo:  outboxRepo,
		txManager:   txManager,
		atomic:      atomic,
		logger:      logger,
	}
}

// creationTask описывает один вариант сценария.
type creationTask struct {
	name       string // имя сущности для логов
	folder     string // каталог в бакете
	eventType  OutboxEventType
	brandID    int64
	categoryID int64
	file       *ImageFile

	// savePrimary сохраняет основную сущность и возвращает её идентификатор.
	savePrimary func(ctx context.Context) (int64, error)
	// saveImage сохраняет запись изображения, привязанную к ownerID.
	saveImage func(ctx context.Context, ownerID int64, uploaded *UploadImageRes) error
	// eventPayload вызывается после saveImage и возвращает данные события.
	eventPayload func() map[string]any
	// invalidate сбрасывает кэш списка. Вызывается, как только запись сущности зафиксирована,
	// в том числе если следующие шаги завершились ошибкой.
	invalidate func(ctx context.Context)
}

// Run выполняет сценарий. Ошибки проверки и загрузки приходят как *e.APIError,
// ошибки хранилища пробрасываются без изменений.
func (w *CreationWorkflow) Run(ctx context.Context, task *creationTask) error {
	const op = "CreationWorkflow.Run"

	if _, _, err := w.validator.Validate(ctx, task.brandID, task.categoryID); err != nil {
		return e.Wrap(op, err)
	}

	// Файл проверяется только после обеих ссылок
	if task.file == nil {
		return e.Wrap(op, e.ErrNoFileUploaded)
	}

	if !w.atomic {
		ownerID, _, err := w.persist(ctx, task)
		if ownerID != 0 {
			w.invalidate(ctx, task)
		}
		if err != nil {
			return e.Wrap(op, err)
		}
		return nil
	}

	var uploaded *UploadImageRes
	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		_, uploaded, err = w.persist(ctx, task)
		return err
	})
	if err != nil {
		if uploaded != nil {
			w.logger.Warnf(
				"Cleaning up orphaned image after transaction failure. name: %s, key: %s, error: %v",
				task.name, uploaded.Key, err,
			)
			w.imagesInfra.CleanupImages([]string{uploaded.Key})
		}
		return e.Wrap(op, err)
	}
	w.invalidate(ctx, task)

	return nil
}

// invalidate не зависит от отмены запроса: запись уже в базе.
func (w *CreationWorkflow) invalidate(ctx context.Context, task *creationTask) {
	if task.invalidate != nil {
		task.invalidate(context.WithoutCancel(ctx))
	}
}

// persist выполняет шаги записи. Идентификатор сущности и результат загрузки
// возвращаются и при ошибке, если эти шаги к этому моменту уже прошли.
func (w *CreationWorkflow) persist(ctx context.Context, task *creationTask) (int64, *UploadImageRes, error) {
	const op = "CreationWorkflow.persist"

	ownerID, err := task.savePrimary(ctx)
	if err != nil {
		return 0, nil, e.Wrap(op, err)
	}

	uploaded, err := w.upload(ctx, task)
	if err != nil {
		return ownerID, nil, e.Wrap(op, err)
	}

	if err := task.saveImage(ctx, ownerID, uploaded); err != nil {
		return ownerID, uploaded, e.Wrap(op, err)
	}

	event, err := NewOutboxEvent(task.eventType, ownerID, task.eventPayload())
	if err != nil {
		return ownerID, uploaded, e.Wrap(op, err)
	}

	if _, err := w.outboxRepo.Create(ctx, event); err != nil {
		return ownerID, uploaded, e.Wrap(op, err)
	}

	return ownerID, uploaded, nil
}

// upload сводит любую неудачу загрузчика (ошибка или пустой URL) к e.ErrImageUploadFailed.
func (w *CreationWorkflow) upload(ctx context.Context, task *creationTask) (*UploadImageRes, error) {
	res, err := w.imagesInfra.UploadImage(ctx, NewUploadImageReq(task.folder, task.file))
	if err != nil {
		w.logger.Warnf("image upload failed. name: %s, file: %s, error: %v", task.name, task.file.Name, err)
		return nil, e.ErrImageUploadFailed
	}

	if res == nil || res.URL == "" {
		w.logger.Warnf("image upload failed. name: %s, file: %s, error: %v", task.name, task.file.Name, e.ErrEmptyImageURL)
		return nil, e.ErrImageUploadFailed
	}

	return res, nil
}
