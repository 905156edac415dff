package wg

type Contract interface {
	SetConf(devName string, confPath string) error
	Show(devName string) (string, error)
}
