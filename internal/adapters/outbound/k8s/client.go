package k8s

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// NewClientset builds a typed clientset. Empty master and kubeconfig select the in-cluster config.
func NewClientset(kubeMaster, kubeConfig string) (kubernetes.Interface, error) {
	restConfig, err := restConfig(kubeMaster, kubeConfig)
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	return clientset, nil
}

func restConfig(kubeMaster, kubeConfig string) (*rest.Config, error) {
	if kubeMaster == "" && kubeConfig == "" {
		cfg, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("build in-cluster config: %w", err)
		}

		return cfg, nil
	}

	cfg, err := clientcmd.BuildConfigFromFlags(kubeMaster, kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	return cfg, nil
}
