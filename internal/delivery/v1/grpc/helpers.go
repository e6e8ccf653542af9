package grpc

import (
	"context"
	"errors"

	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCErrorResponse переводит ошибку приложения в статус gRPC.
// Сообщения *e.APIError отдаются клиенту, остальные скрываются.
func GRPCErrorResponse(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	var apiErr *e.APIError
	switch {
	case errors.As(err, &apiErr) && errors.Is(apiErr, e.ErrNotFound):
		return status.Error(codes.NotFound, apiErr.Error())
	case errors.As(err, &apiErr) && errors.Is(apiErr, e.ErrBadRequest):
		return status.Error(codes.InvalidArgument, apiErr.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

func unaryErrorInterceptor(l logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			l.Errorf(err, "grpc %s", info.FullMethod)
			return nil, GRPCErrorResponse(err)
		}
		return resp, nil
	}
}
